/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for type-detective. Provides command-line
options, configuration management, and a clean user interface for inferring
structural type declarations from JSON samples.
*/

package main

import (
	"fmt"
	"os"

	"github.com/Pinta365/type-detective/cmd/type-detective/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logDir     string
	logColors  bool

	// Inference configuration
	mode        string
	indentSize  int
	indentKind  string
	arrayStyle  string
	typeName    string
	outputDir   string
	jqFilter    string
	mergeInputs bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "type-detective",
		Short: "type-detective - Structural type inference from sample data",
		Long: `type-detective converts runtime values into textual structural type
declarations. Point it at sample data (API responses, logs, JSON documents)
and it scaffolds best-effort type definitions, merging observed object shapes
with optional fields or preserving each distinct shape as a union variant.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = console only)")
	rootCmd.PersistentFlags().BoolVar(&logColors, "log-colors", true, "Colorize console log output")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_colors", rootCmd.PersistentFlags().Lookup("log-colors"))

	// Add infer command
	inferCmd := &cobra.Command{
		Use:   "infer [files...]",
		Short: "Infer type declarations from JSON samples",
		Long: `Infer structural type declarations from one or more JSON sample files
(or stdin when no files are given). Each file yields one declaration; with
--merge-samples all inputs are combined into a single array value so the
merge/union shape algebra applies across samples.`,
		RunE: commands.RunInfer,
	}

	// Add infer command flags
	inferCmd.Flags().StringVar(&mode, "mode", "", "Shape combination mode (merge, union)")
	inferCmd.Flags().IntVar(&indentSize, "indent-size", 0, "Indentation size (positive integer)")
	inferCmd.Flags().StringVar(&indentKind, "indent-kind", "", "Indentation character (space, tab)")
	inferCmd.Flags().StringVar(&arrayStyle, "array-style", "", "Array rendering style (postfix, generic)")
	inferCmd.Flags().StringVar(&typeName, "name", "", "Type name for the declaration (default: derived from filename)")
	inferCmd.Flags().StringVar(&outputDir, "output", "", "Output directory for .ts files (empty = print to stdout)")
	inferCmd.Flags().StringVar(&jqFilter, "jq", "", "jq query applied to each sample before inference")
	inferCmd.Flags().BoolVar(&mergeInputs, "merge-samples", false, "Combine all inputs into one array value before inference")

	// Bind flags to viper
	viper.BindPFlag("mode", inferCmd.Flags().Lookup("mode"))
	viper.BindPFlag("indent_size", inferCmd.Flags().Lookup("indent-size"))
	viper.BindPFlag("indent_kind", inferCmd.Flags().Lookup("indent-kind"))
	viper.BindPFlag("array_style", inferCmd.Flags().Lookup("array-style"))
	viper.BindPFlag("type_name", inferCmd.Flags().Lookup("name"))
	viper.BindPFlag("output_dir", inferCmd.Flags().Lookup("output"))
	viper.BindPFlag("jq_filter", inferCmd.Flags().Lookup("jq"))
	viper.BindPFlag("merge_samples", inferCmd.Flags().Lookup("merge-samples"))

	rootCmd.AddCommand(inferCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
