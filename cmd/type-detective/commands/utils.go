/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the type-detective commands. Provides common
configuration loading, logging setup, and type name derivation used across
command implementations.
*/

package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Pinta365/type-detective/pkg/inference"
	"github.com/Pinta365/type-detective/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("TYPEDETECTIVE")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system from viper settings
func SetupLogging() (*logging.Logger, error) {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		Colors:    viper.GetBool("log_colors"),
	}
	if config.Level == "" {
		config.Level = logging.LogLevelInfo
	}
	if config.Format == "" {
		config.Format = logging.LogFormatText
	}
	return logging.NewLogger(config)
}

// InferenceConfig builds an immutable inference configuration snapshot
// from viper settings. Unset or invalid fields fall back to defaults
// inside the engine.
func InferenceConfig() inference.Config {
	return inference.Config{
		Mode:       inference.Mode(viper.GetString("mode")),
		IndentSize: viper.GetInt("indent_size"),
		IndentKind: inference.IndentKind(viper.GetString("indent_kind")),
		ArrayStyle: inference.ArrayStyle(viper.GetString("array_style")),
	}
}

// DeriveTypeName derives a declaration name from a sample filename:
// the base name without extension, split on non-alphanumeric runs and
// title-cased. Names that would start with a digit get a "Type" prefix;
// an empty derivation falls back to "Root".
func DeriveTypeName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	upperNext := true
	for _, r := range base {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			if upperNext && r >= 'a' && r <= 'z' {
				r = r - 'a' + 'A'
			}
			b.WriteRune(r)
			upperNext = false
		case r >= '0' && r <= '9':
			if b.Len() == 0 {
				b.WriteString("Type")
			}
			b.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}

	if b.Len() == 0 {
		return "Root"
	}
	return b.String()
}
