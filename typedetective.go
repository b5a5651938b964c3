/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: typedetective.go
Description: Root package for type-detective. Re-exports the inference engine's
public surface so library users can infer structural type declarations from
runtime values with a single import.
*/

package typedetective

import "github.com/Pinta365/type-detective/pkg/inference"

// Re-exported configuration types and constants
type (
	Config     = inference.Config
	Options    = inference.Options
	Mode       = inference.Mode
	IndentKind = inference.IndentKind
	ArrayStyle = inference.ArrayStyle
	Object     = inference.Object
	Symbol     = inference.Symbol
)

const (
	ModeMerge    = inference.ModeMerge
	ModeUnion    = inference.ModeUnion
	IndentSpace  = inference.IndentSpace
	IndentTab    = inference.IndentTab
	StylePostfix = inference.StylePostfix
	StyleGeneric = inference.StyleGeneric
)

// Undefined is the sentinel for an explicitly-undefined value
var Undefined = inference.Undefined

// InferType infers the structural type text for a value at the given
// indent level. mode "" uses the configured mode.
func InferType(value interface{}, indentLevel int, mode Mode) string {
	return inference.InferType(value, indentLevel, mode)
}

// DetectType is a semantic alias of InferType
func DetectType(value interface{}, indentLevel int, mode Mode) string {
	return inference.DetectType(value, indentLevel, mode)
}

// Configure applies the valid fields of opts to the process-wide
// configuration, silently ignoring invalid ones
func Configure(opts Options) {
	inference.Configure(opts)
}

// GetConfig returns a snapshot of the current configuration
func GetConfig() Config {
	return inference.GetConfig()
}

// NewObject creates an empty insertion-ordered object value
func NewObject() *Object {
	return inference.NewObject()
}
