/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: value.go
Description: Runtime value model for the type inference engine. Classifies arbitrary
Go values into the kinds the engine understands and provides an insertion-ordered
object container so single-object inference can preserve natural key order.
*/

package inference

import (
	"encoding/json"
	"math/big"
	"reflect"
	"sort"
)

// ValueKind identifies the runtime kind of an input value
type ValueKind int

const (
	KindNull ValueKind = iota
	KindUndefined
	KindBoolean
	KindNumber
	KindString
	KindSymbol
	KindBigInt
	KindFunction
	KindArray
	KindObject
	KindUnknown
)

// Undefined is the sentinel for an explicitly-undefined value, distinct
// from null (nil). Inferred as the "undefined" token.
var Undefined = undefinedValue{}

type undefinedValue struct{}

// Symbol is a symbol-like value; the string is a description and does not
// affect inference. Inferred as the "symbol" token.
type Symbol string

// Object is an insertion-ordered mapping from string keys to values.
// The engine preserves this order when inferring a single object's shape,
// so callers building values by hand get the same key order back out.
type Object struct {
	keys []string
	vals map[string]interface{}
}

// NewObject creates an empty ordered object
func NewObject() *Object {
	return &Object{vals: make(map[string]interface{})}
}

// Set adds or replaces a key. A replaced key keeps its original position.
// Returns the object for chaining.
func (o *Object) Set(key string, value interface{}) *Object {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = value
	return o
}

// Get returns the value for a key and whether it was present
func (o *Object) Get(key string) (interface{}, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys
func (o *Object) Len() int {
	return len(o.keys)
}

// kindOf classifies a runtime value into a ValueKind
func kindOf(v interface{}) ValueKind {
	if v == nil {
		return KindNull
	}

	switch v.(type) {
	case undefinedValue:
		return KindUndefined
	case bool:
		return KindBoolean
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return KindNumber
	case Symbol:
		return KindSymbol
	case *big.Int, big.Int:
		return KindBigInt
	case string:
		return KindString
	case []interface{}:
		return KindArray
	case *Object, map[string]interface{}:
		return KindObject
	}

	// Fallback: classify by reflected kind, like the JSON corpus analyzer
	// falls back to reflect for values it has no switch arm for.
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Func:
		return KindFunction
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
		return KindUnknown
	case reflect.Ptr:
		if rv.IsNil() {
			return KindNull
		}
		return KindUnknown
	default:
		return KindUnknown
	}
}

// asArray normalizes any array-kinded value to []interface{}
func asArray(v interface{}) []interface{} {
	if elems, ok := v.([]interface{}); ok {
		return elems
	}
	rv := reflect.ValueOf(v)
	elems := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elems[i] = rv.Index(i).Interface()
	}
	return elems
}

// asObject normalizes any object-kinded value to an ordered *Object.
// Plain Go maps carry no insertion order, so their keys are sorted to
// keep output deterministic; ordered inputs pass through untouched.
func asObject(v interface{}) *Object {
	if obj, ok := v.(*Object); ok {
		return obj
	}

	obj := NewObject()
	if m, ok := v.(map[string]interface{}); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			obj.Set(k, m[k])
		}
		return obj
	}

	// Keep the original reflect keys for indexing: the map's key type may
	// be a named string type, which a plain string is not assignable to.
	rv := reflect.ValueOf(v)
	mapKeys := rv.MapKeys()
	sort.Slice(mapKeys, func(i, j int) bool {
		return mapKeys[i].String() < mapKeys[j].String()
	})
	for _, k := range mapKeys {
		obj.Set(k.String(), rv.MapIndex(k).Interface())
	}
	return obj
}

// identityOf returns a stable identity for container values so the
// traversal can detect revisits (cycles). Non-containers have no
// identity and return false.
func identityOf(v interface{}) (uintptr, bool) {
	switch cv := v.(type) {
	case *Object:
		return reflect.ValueOf(cv).Pointer(), true
	case []interface{}:
		if cv == nil {
			return 0, false
		}
		return reflect.ValueOf(cv).Pointer(), true
	case map[string]interface{}:
		if cv == nil {
			return 0, false
		}
		return reflect.ValueOf(cv).Pointer(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}
