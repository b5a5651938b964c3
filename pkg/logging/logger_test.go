/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for the logging system. Tests logger creation, configuration
validation, and timestamped file output.
*/

package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Pinta365/type-detective/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerCreationWithDefaults(t *testing.T) {
	logger, err := logging.NewLogger(nil)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	defer logger.Close()

	logger.Info("default logger works")
}

func TestLoggerConfigValidation(t *testing.T) {
	valid := &logging.LoggerConfig{
		Level:  logging.LogLevelDebug,
		Format: logging.LogFormatJSON,
	}
	assert.NoError(t, valid.Validate())

	badFormat := &logging.LoggerConfig{
		Level:  logging.LogLevelInfo,
		Format: logging.LogFormat("xml"),
	}
	assert.Error(t, badFormat.Validate())

	badLevel := &logging.LoggerConfig{
		Level:  logging.LogLevel("loud"),
		Format: logging.LogFormatText,
	}
	assert.Error(t, badLevel.Validate())
}

func TestLoggerRejectsInvalidConfig(t *testing.T) {
	_, err := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevel("loud"),
		Format: logging.LogFormatText,
	})
	assert.Error(t, err)
}

func TestLoggerFileOutput(t *testing.T) {
	dir := t.TempDir()

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelDebug,
		Format:    logging.LogFormatJSON,
		OutputDir: dir,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.WithFields(logrus.Fields{"key": "value"}).Info("file output works")

	files, err := filepath.Glob(filepath.Join(dir, "type-detective_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "file output works")
}
