/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: expression.go
Description: TypeExpression tree for the inference engine. Expressions are built
bottom-up during traversal, merged and unified structurally, and rendered to the
generated type syntax exactly once at the end. No rendered text is ever re-parsed.
*/

package inference

import "strings"

// Fixed tokens of the generated syntax
const (
	TokenCallable    = "() => unknown"
	TokenCircular    = "unknown /* circular */"
	TokenEmptyObject = "Record<string | number | symbol, never>"
	TokenOpenRecord  = "Record<string | number | symbol, unknown>"
)

// Expression is a node of the type expression tree. Render produces the
// textual type at the given nesting depth; depth controls only the
// indentation of continuation lines, never the structure.
type Expression interface {
	Render(cfg Config, depth int) string
}

// Primitive is a fixed single-token type: null, undefined, boolean,
// number, string, symbol, bigint, unknown.
type Primitive string

// Render returns the primitive token unchanged
func (p Primitive) Render(cfg Config, depth int) string {
	return string(p)
}

// Callable is the type of any function value
type Callable struct{}

// Render returns the zero-argument callable token
func (Callable) Render(cfg Config, depth int) string {
	return TokenCallable
}

// Circular marks a revisited container in a cyclic input
type Circular struct{}

// Render returns the circular reference marker
func (Circular) Render(cfg Config, depth int) string {
	return TokenCircular
}

// OpenRecord is the fallback shape for a merge over zero objects:
// arbitrary keys, unknown values.
type OpenRecord struct{}

// Render returns the open record token
func (OpenRecord) Render(cfg Config, depth int) string {
	return TokenOpenRecord
}

// ArrayType wraps an element type in the configured array syntax
type ArrayType struct {
	Elem Expression
}

// Render wraps the element in the active array style. Union elements are
// parenthesized in the postfix style; the generic style never needs parens.
func (a *ArrayType) Render(cfg Config, depth int) string {
	if u, ok := a.Elem.(*UnionType); ok {
		texts := u.variantTexts(cfg, depth+1)
		if anyMultiline(texts) {
			block := multilineUnion(cfg, depth, texts)
			if cfg.ArrayStyle == StyleGeneric {
				return "Array<" + block + ">"
			}
			return "(" + block + ")[]"
		}
		joined := strings.Join(texts, " | ")
		if cfg.ArrayStyle == StyleGeneric {
			return "Array<" + joined + ">"
		}
		return "(" + joined + ")[]"
	}

	elem := a.Elem.Render(cfg, depth)
	if cfg.ArrayStyle == StyleGeneric {
		return "Array<" + elem + ">"
	}
	return elem + "[]"
}

// Field is one key of an object type
type Field struct {
	Key      string
	Type     Expression
	Optional bool
}

// ObjectType is an object shape with uniquely-keyed fields. Field order is
// whatever the builder chose: insertion order for single-object inference,
// sorted order when built by the shape merger.
type ObjectType struct {
	Fields []Field
}

// Render emits the multi-line object block. An object with no fields
// renders as the empty-object token: no specific keys, arbitrary key
// access yields never.
func (o *ObjectType) Render(cfg Config, depth int) string {
	if len(o.Fields) == 0 {
		return TokenEmptyObject
	}

	var b strings.Builder
	b.WriteString("{\n")
	inner := cfg.indent(depth + 1)
	for _, f := range o.Fields {
		b.WriteString(inner)
		b.WriteString(f.Key)
		if f.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(f.Type.Render(cfg, depth+1))
		b.WriteString(";\n")
	}
	b.WriteString(cfg.indent(depth))
	b.WriteString("}")
	return b.String()
}

// UnionType is a union of variant types. Variants are already deduplicated
// and ordered by the builder (alphabetically in merge contexts, by first
// occurrence in union contexts); rendering never reorders them.
type UnionType struct {
	Variants []Expression
}

// Render joins variants with " | ", switching to the parenthesized
// one-variant-per-line form when any variant spans multiple lines.
func (u *UnionType) Render(cfg Config, depth int) string {
	texts := u.variantTexts(cfg, depth+1)
	if anyMultiline(texts) {
		return "(" + multilineUnion(cfg, depth, texts) + ")"
	}
	return strings.Join(texts, " | ")
}

func (u *UnionType) variantTexts(cfg Config, depth int) []string {
	texts := make([]string, len(u.Variants))
	for i, v := range u.Variants {
		texts[i] = v.Render(cfg, depth)
	}
	return texts
}

func anyMultiline(texts []string) bool {
	for _, t := range texts {
		if strings.Contains(t, "\n") {
			return true
		}
	}
	return false
}

// multilineUnion lays out variants one per line at the next indent, with
// the union bar prefixing every variant after the first. The result starts
// with a newline and ends with the enclosing depth's indent, so the caller
// can close it with ")" or ">" directly.
func multilineUnion(cfg Config, depth int, texts []string) string {
	var b strings.Builder
	inner := cfg.indent(depth + 1)
	for i, t := range texts {
		b.WriteString("\n")
		b.WriteString(inner)
		if i > 0 {
			b.WriteString("| ")
		}
		b.WriteString(t)
	}
	b.WriteString("\n")
	b.WriteString(cfg.indent(depth))
	return b.String()
}

// emptyArray is the type of an array with no elements
func emptyArray() Expression {
	return &ArrayType{Elem: Primitive("unknown")}
}
