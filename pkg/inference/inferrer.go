/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inferrer.go
Description: Recursive type inferrer. Walks a runtime value, dispatches on its
kind, and builds a TypeExpression tree. Arrays of arrays and arrays of objects
are handed to the array unifier; cyclic containers produce a circular marker
instead of exhausting the stack.
*/

package inference

import "sort"

// Inferrer infers type expressions under one immutable configuration
// snapshot. A single Inferrer is safe for concurrent use: all state is
// per-call.
type Inferrer struct {
	cfg Config
}

// New creates an inferrer with the given configuration. Invalid or zero
// fields fall back to defaults.
func New(cfg Config) *Inferrer {
	return &Inferrer{cfg: cfg.normalized()}
}

// Config returns the inferrer's configuration snapshot
func (in *Inferrer) Config() Config {
	return in.cfg
}

// Infer returns the inferred type text for a value at depth zero
func (in *Inferrer) Infer(value interface{}) string {
	return in.InferAt(value, 0)
}

// InferAt returns the inferred type text for a value, indenting
// continuation lines for the given nesting depth. It is total: every
// value maps to some text and no input causes an error.
func (in *Inferrer) InferAt(value interface{}, depth int) string {
	seen := make(map[uintptr]bool)
	return in.expr(value, seen).Render(in.cfg, depth)
}

// expr builds the expression tree for a value. seen tracks container
// identities on the current traversal path; a revisit means a cycle.
func (in *Inferrer) expr(value interface{}, seen map[uintptr]bool) Expression {
	switch kindOf(value) {
	case KindNull:
		return Primitive("null")
	case KindUndefined:
		return Primitive("undefined")
	case KindBoolean:
		return Primitive("boolean")
	case KindNumber:
		return Primitive("number")
	case KindString:
		return Primitive("string")
	case KindSymbol:
		return Primitive("symbol")
	case KindBigInt:
		return Primitive("bigint")
	case KindFunction:
		return Callable{}

	case KindArray:
		id, hasID := identityOf(value)
		if hasID {
			if seen[id] {
				return Circular{}
			}
			seen[id] = true
			defer delete(seen, id)
		}
		return in.arrayExpr(asArray(value), seen)

	case KindObject:
		id, hasID := identityOf(value)
		if hasID {
			if seen[id] {
				return Circular{}
			}
			seen[id] = true
			defer delete(seen, id)
		}
		return in.objectExpr(asObject(value), seen)

	default:
		return Primitive("unknown")
	}
}

// arrayExpr classifies an array's elements and delegates to the unifier
func (in *Inferrer) arrayExpr(elems []interface{}, seen map[uintptr]bool) Expression {
	if len(elems) == 0 {
		return emptyArray()
	}

	allArrays := true
	allObjects := true
	for _, e := range elems {
		switch kindOf(e) {
		case KindArray:
			allObjects = false
		case KindObject:
			allArrays = false
		default:
			allArrays = false
			allObjects = false
		}
	}

	switch {
	case allArrays:
		return in.unifyArrays(elems, seen)
	case allObjects:
		return in.unifyObjects(elems, seen)
	default:
		return in.unifyMixed(elems, seen)
	}
}

// objectExpr builds a shape from a single object, preserving the input's
// natural key order. This deliberately differs from the shape merger,
// which sorts keys when combining multiple objects.
func (in *Inferrer) objectExpr(obj *Object, seen map[uintptr]bool) Expression {
	if obj.Len() == 0 {
		return &ObjectType{}
	}

	fields := make([]Field, 0, obj.Len())
	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		fields = append(fields, Field{Key: key, Type: in.expr(v, seen)})
	}
	return &ObjectType{Fields: fields}
}

// renderKey renders an expression for text-equality comparison. Depth zero
// is fine: comparisons only ever happen between siblings, which would all
// carry the same indent prefix anyway.
func (in *Inferrer) renderKey(e Expression) string {
	return e.Render(in.cfg, 0)
}

// dedupOrdered drops exact-text duplicates, keeping first-occurrence order
func (in *Inferrer) dedupOrdered(exprs []Expression) []Expression {
	out := make([]Expression, 0, len(exprs))
	texts := make(map[string]bool, len(exprs))
	for _, e := range exprs {
		key := in.renderKey(e)
		if texts[key] {
			continue
		}
		texts[key] = true
		out = append(out, e)
	}
	return out
}

// dedupSorted drops exact-text duplicates and orders the survivors
// alphabetically by their rendered text
func (in *Inferrer) dedupSorted(exprs []Expression) []Expression {
	out := in.dedupOrdered(exprs)
	sort.Slice(out, func(i, j int) bool {
		return in.renderKey(out[i]) < in.renderKey(out[j])
	})
	return out
}

// unionOf collapses a deduplicated variant list: a singleton stays bare,
// anything longer becomes a union in the given order
func unionOf(variants []Expression) Expression {
	if len(variants) == 1 {
		return variants[0]
	}
	return &UnionType{Variants: variants}
}
