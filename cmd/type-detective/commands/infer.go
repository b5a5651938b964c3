/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Infer command implementation for type-detective. Reads JSON samples
from files or stdin, optionally pre-filters them with a jq query, runs the type
inference engine, and prints or writes the resulting type declarations.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Pinta365/type-detective/pkg/inference"
	"github.com/Pinta365/type-detective/pkg/writer"
	"github.com/google/uuid"
	"github.com/itchyny/gojq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sample is one named input to infer a declaration from
type sample struct {
	Name  string
	Value interface{}
}

// RunInfer reads JSON samples and emits type declarations
func RunInfer(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 type-detective - Structural Type Inference")
	fmt.Println("=============================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	runID := uuid.New().String()
	cfg := InferenceConfig()
	engine := inference.New(cfg)

	logger.WithFields(logrus.Fields{
		"run_id":      runID,
		"mode":        engine.Config().Mode,
		"array_style": engine.Config().ArrayStyle,
		"inputs":      len(args),
	}).Info("Starting type inference")

	samples, err := loadSamples(args)
	if err != nil {
		return err
	}

	if viper.GetBool("merge_samples") && len(samples) > 1 {
		combined := make([]interface{}, len(samples))
		for i, s := range samples {
			combined[i] = s.Value
		}
		name := viper.GetString("type_name")
		if name == "" {
			name = "MergedSamples"
		}
		samples = []sample{{Name: name, Value: combined}}
	} else if name := viper.GetString("type_name"); name != "" && len(samples) == 1 {
		samples[0].Name = name
	}

	outputDir := viper.GetString("output_dir")
	for _, s := range samples {
		text := engine.Infer(s.Value)

		if outputDir == "" {
			fmt.Println(writer.FormatDeclaration(s.Name, text))
			fmt.Println()
			continue
		}

		path := filepath.Join(outputDir, s.Name+".ts")
		written, err := writer.WriteTypeFile(path, s.Name, text, writer.Options{
			Banner: true,
			RunID:  runID,
		})
		if err != nil {
			return fmt.Errorf("failed to write declaration for %s: %w", s.Name, err)
		}

		logger.WithFields(logrus.Fields{
			"run_id": runID,
			"type":   s.Name,
			"file":   written,
		}).Info("Declaration written")
		fmt.Printf("📝 %s -> %s\n", s.Name, written)
	}

	fmt.Println()
	fmt.Printf("✅ Inferred %d declaration(s)\n", len(samples))
	return nil
}

// loadSamples reads and decodes all inputs: the given files, or stdin
// when none are given. A configured jq query filters each sample first.
func loadSamples(args []string) ([]sample, error) {
	jqQuery := viper.GetString("jq_filter")

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		v, err := decodeSample(data, jqQuery)
		if err != nil {
			return nil, err
		}
		name := viper.GetString("type_name")
		if name == "" {
			name = "Root"
		}
		return []sample{{Name: name, Value: v}}, nil
	}

	samples := make([]sample, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sample file: %w", err)
		}
		v, err := decodeSample(data, jqQuery)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		samples = append(samples, sample{Name: DeriveTypeName(path), Value: v})
	}
	return samples, nil
}

// decodeSample decodes one JSON document, applying the jq query first when
// one is set. The query runs over a plain decode and the selected result is
// re-encoded before the order-preserving decode, since jq evaluation does
// not keep document key order.
func decodeSample(data []byte, jqQuery string) (interface{}, error) {
	if jqQuery != "" {
		filtered, err := applyJQ(data, jqQuery)
		if err != nil {
			return nil, err
		}
		data = filtered
	}
	return inference.DecodeJSON(data)
}

// applyJQ evaluates a jq query against a JSON document and returns the
// first result re-encoded as JSON
func applyJQ(data []byte, query string) ([]byte, error) {
	q, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid jq query: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sample: %w", err)
	}

	iter := q.Run(doc)
	v, ok := iter.Next()
	if !ok {
		return nil, fmt.Errorf("jq query %q produced no result", query)
	}
	if err, isErr := v.(error); isErr {
		return nil, fmt.Errorf("jq query failed: %w", err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode jq result: %w", err)
	}
	return out, nil
}
