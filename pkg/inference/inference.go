/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: Main entry points for runtime value type inference. Converts an
arbitrary value (primitive, array, nested object, function) into a textual
structural type declaration, suitable for scaffolding type definitions from
sample data such as API responses, logs, and JSON documents.
*/

package inference

// InferType infers the structural type text for a value. indentLevel sets
// the nesting depth continuation lines are indented for (0 for a top-level
// declaration). mode overrides the configured merge/union mode for this
// call; pass "" to use the current configuration. The configuration is
// snapshotted once at entry, so concurrent Configure calls cannot produce
// a torn mix of settings inside one traversal.
//
// InferType is total: every value maps to some text. Unrecognized kinds
// fall back to the unknown token and no input causes an error.
func InferType(value interface{}, indentLevel int, mode Mode) string {
	return New(snapshotConfig(mode)).InferAt(value, indentLevel)
}

// DetectType is a semantic alias of InferType
func DetectType(value interface{}, indentLevel int, mode Mode) string {
	return InferType(value, indentLevel, mode)
}
