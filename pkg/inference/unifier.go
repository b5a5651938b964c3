/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: unifier.go
Description: Array unifier. Decides how an array's element type is built from
its elements: arrays of arrays flatten or union their sub-array types, arrays
of objects merge or union their shapes depending on the active mode, and mixed
arrays union the distinct element types in first-occurrence order.
*/

package inference

import "strings"

// unifyArrays combines an array whose elements are all arrays into a
// double-nested array type.
//
// Merge mode flattens every sub-array's element types into one set,
// deduplicates, and sorts alphabetically. Union mode keeps distinct
// sub-array types: if any is multi-line they union as-is inside the outer
// array, otherwise they collapse to their element types, which are
// deduplicated and sorted; a single survivor yields the compact T[][].
func (in *Inferrer) unifyArrays(elems []interface{}, seen map[uintptr]bool) Expression {
	subs := make([]Expression, len(elems))
	for i, e := range elems {
		subs[i] = in.expr(e, seen)
	}

	if in.cfg.Mode == ModeMerge {
		return in.flattenedArrayOfArrays(subs)
	}

	distinct := in.dedupOrdered(subs)
	for _, d := range distinct {
		if strings.Contains(in.renderKey(d), "\n") {
			return &ArrayType{Elem: unionOf(distinct)}
		}
	}
	return in.flattenedArrayOfArrays(distinct)
}

// flattenedArrayOfArrays extracts every sub-array's element types,
// deduplicates and sorts them, and wraps the result twice
func (in *Inferrer) flattenedArrayOfArrays(subs []Expression) Expression {
	var parts []Expression
	for _, s := range subs {
		parts = append(parts, elementTypesOf(s)...)
	}
	elem := unionOf(in.dedupSorted(parts))
	return &ArrayType{Elem: &ArrayType{Elem: elem}}
}

// elementTypesOf extracts an array expression's element types, flattening
// a union element into its variants. A non-array expression (a circular
// marker, for instance) contributes itself.
func elementTypesOf(e Expression) []Expression {
	at, ok := e.(*ArrayType)
	if !ok {
		return []Expression{e}
	}
	if u, ok := at.Elem.(*UnionType); ok {
		return u.Variants
	}
	return []Expression{at.Elem}
}

// unifyObjects combines an array whose elements are all non-array objects.
// Merge mode produces one merged shape; union mode keeps each distinct
// shape as a variant in first-occurrence order, collapsing a singleton to
// a bare element array.
func (in *Inferrer) unifyObjects(objs []interface{}, seen map[uintptr]bool) Expression {
	if in.cfg.Mode == ModeMerge {
		return &ArrayType{Elem: in.mergeShapes(objs, seen)}
	}

	exprs := make([]Expression, len(objs))
	for i, o := range objs {
		exprs[i] = in.expr(o, seen)
	}
	return &ArrayType{Elem: unionOf(in.dedupOrdered(exprs))}
}

// unifyMixed combines an array of heterogeneous elements. Each element is
// inferred independently; objects pass through a singleton shape merge so
// their keys come out sorted. Distinct types keep first-occurrence order,
// unlike the merger's alphabetical policy.
func (in *Inferrer) unifyMixed(elems []interface{}, seen map[uintptr]bool) Expression {
	exprs := make([]Expression, 0, len(elems))
	for _, e := range elems {
		if kindOf(e) == KindObject {
			exprs = append(exprs, in.mergeShapes([]interface{}{e}, seen))
		} else {
			exprs = append(exprs, in.expr(e, seen))
		}
	}
	return &ArrayType{Elem: unionOf(in.dedupOrdered(exprs))}
}
