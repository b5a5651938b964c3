/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: merger.go
Description: Shape merger for merge mode. Combines N object values into one
object type: keys become the sorted union of all observed keys, a key absent
from some inputs is optional, and each key's type is the deduplicated,
alphabetically sorted union of its per-input inferred types.
*/

package inference

import "sort"

// MergeShapes merges object values into one rendered object type at the
// given depth. Every element must be a non-array, non-null object; an
// empty input list yields the open record fallback.
func (in *Inferrer) MergeShapes(objects []interface{}, depth int) string {
	seen := make(map[uintptr]bool)
	return in.mergeShapes(objects, seen).Render(in.cfg, depth)
}

// mergeShapes merges object values into a single object shape. The caller
// guarantees every element is a non-array, non-null object; an empty input
// list falls back to the open record type.
func (in *Inferrer) mergeShapes(objects []interface{}, seen map[uintptr]bool) Expression {
	if len(objects) == 0 {
		return OpenRecord{}
	}

	objs := make([]*Object, len(objects))
	ids := make([]uintptr, len(objects))
	hasID := make([]bool, len(objects))
	keySet := make(map[string]bool)
	for i, o := range objects {
		objs[i] = asObject(o)
		ids[i], hasID[i] = identityOf(o)
		for _, k := range objs[i].Keys() {
			keySet[k] = true
		}
	}

	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		present := 0
		var candidates []Expression
		for i, obj := range objs {
			v, ok := obj.Get(key)
			if !ok {
				continue
			}
			present++
			// An input is on the traversal path only while its own field
			// is being inferred, so sibling inputs referencing each other
			// stay shared data. An input already on the path from an
			// outer descent is a genuine cycle.
			if hasID[i] && seen[ids[i]] {
				candidates = append(candidates, Circular{})
				continue
			}
			if hasID[i] {
				seen[ids[i]] = true
			}
			candidates = append(candidates, in.mergedFieldExpr(v, seen))
			if hasID[i] {
				delete(seen, ids[i])
			}
		}
		fields = append(fields, Field{
			Key:      key,
			Type:     unionOf(in.dedupSorted(candidates)),
			Optional: present < len(objs),
		})
	}
	return &ObjectType{Fields: fields}
}

// mergedFieldExpr computes one input's contribution to a merged key. An
// array of objects is merged then wrapped; a plain object merges as a
// singleton list (so nested shapes also get sorted keys); everything else
// infers directly.
func (in *Inferrer) mergedFieldExpr(v interface{}, seen map[uintptr]bool) Expression {
	switch kindOf(v) {
	case KindArray:
		elems := asArray(v)
		if len(elems) > 0 && allObjectElems(elems) {
			id, ok := identityOf(v)
			if ok {
				if seen[id] {
					return Circular{}
				}
				seen[id] = true
				defer delete(seen, id)
			}
			return &ArrayType{Elem: in.mergeShapes(elems, seen)}
		}
		return in.expr(v, seen)
	case KindObject:
		return in.mergeShapes([]interface{}{v}, seen)
	default:
		return in.expr(v, seen)
	}
}

// allObjectElems reports whether every element is a non-array object
func allObjectElems(elems []interface{}) bool {
	for _, e := range elems {
		if kindOf(e) != KindObject {
			return false
		}
	}
	return true
}
