/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: Utility for writing inferred type declarations to disk. Renders
an export statement for a named type, optionally preceded by a generation
banner, ensures the destination directory exists, and returns the final path.
*/

package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Options controls how a declaration file is written
type Options struct {
	// Banner prepends a generation comment with timestamp and run ID
	Banner bool
	// RunID identifies the generation run in the banner; a fresh UUID is
	// used when empty
	RunID string
}

// FormatDeclaration renders the export statement for a named type
func FormatDeclaration(name string, typeText string) string {
	return fmt.Sprintf("export type %s = %s;", name, typeText)
}

// ValidateTypeName checks that a type name is a usable identifier:
// a letter, underscore, or dollar sign followed by letters, digits,
// underscores, or dollar signs.
func ValidateTypeName(name string) error {
	if name == "" {
		return fmt.Errorf("type name must not be empty")
	}
	for i, r := range name {
		if r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return fmt.Errorf("invalid character %q in type name %q", r, name)
	}
	return nil
}

// WriteTypeFile writes the declaration for a named type to path, creating
// parent directories as needed. Returns the path written.
func WriteTypeFile(path string, name string, typeText string, opts Options) (string, error) {
	if err := ValidateTypeName(name); err != nil {
		return "", err
	}

	var b strings.Builder
	if opts.Banner {
		runID := opts.RunID
		if runID == "" {
			runID = uuid.New().String()
		}
		timestamp := time.Now().Format("2006-01-02 15:04:05")
		b.WriteString(fmt.Sprintf("// Generated by type-detective at %s (run %s)\n", timestamp, runID))
	}
	b.WriteString(FormatDeclaration(name, typeText))
	b.WriteString("\n")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write type file: %w", err)
	}
	return path, nil
}
