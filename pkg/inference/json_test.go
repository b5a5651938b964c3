/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: json_test.go
Description: Tests for order-preserving JSON decoding. Verifies document key
order survives decoding, numbers map to the number token, and malformed input
surfaces an error.
*/

package inference_test

import (
	"strings"
	"testing"

	"github.com/Pinta365/type-detective/pkg/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONPreservesKeyOrder(t *testing.T) {
	v, err := inference.DecodeJSON([]byte(`{"zeta": 1, "alpha": "x", "beta": true}`))
	require.NoError(t, err)

	obj, ok := v.(*inference.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "beta"}, obj.Keys())
}

func TestDecodeJSONRoundTripInference(t *testing.T) {
	v, err := inference.DecodeJSON([]byte(`{"z": 1, "a": "x"}`))
	require.NoError(t, err)

	engine := inference.New(inference.DefaultConfig())
	expected := "{\n" +
		"  z: number;\n" +
		"  a: string;\n" +
		"}"
	assert.Equal(t, expected, engine.Infer(v))
}

func TestDecodeJSONArrayAndScalars(t *testing.T) {
	v, err := inference.DecodeJSON([]byte(`[1, "two", true, null, 4.5]`))
	require.NoError(t, err)

	elems, ok := v.([]interface{})
	require.True(t, ok)
	require.Len(t, elems, 5)
	assert.Nil(t, elems[3])

	engine := inference.New(inference.DefaultConfig())
	assert.Equal(t, "(number | string | boolean | null)[]", engine.Infer(v))
}

func TestDecodeJSONNestedStructures(t *testing.T) {
	doc := `{"users": [{"id": 1, "name": "Alice"}, {"id": 2, "email": "bob@x"}]}`
	v, err := inference.DecodeJSON([]byte(doc))
	require.NoError(t, err)

	engine := inference.New(inference.DefaultConfig())
	expected := "{\n" +
		"  users: {\n" +
		"    email?: string;\n" +
		"    id: number;\n" +
		"    name?: string;\n" +
		"  }[];\n" +
		"}"
	assert.Equal(t, expected, engine.Infer(v))
}

func TestDecodeJSONEmptyContainers(t *testing.T) {
	v, err := inference.DecodeJSON([]byte(`{"items": [], "meta": {}}`))
	require.NoError(t, err)

	engine := inference.New(inference.DefaultConfig())
	expected := "{\n" +
		"  items: unknown[];\n" +
		"  meta: Record<string | number | symbol, never>;\n" +
		"}"
	assert.Equal(t, expected, engine.Infer(v))
}

func TestDecodeJSONReader(t *testing.T) {
	v, err := inference.DecodeJSONReader(strings.NewReader(`{"b": 2, "a": 1}`))
	require.NoError(t, err)

	obj, ok := v.(*inference.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, obj.Keys())
}

func TestDecodeJSONMalformedInput(t *testing.T) {
	_, err := inference.DecodeJSON([]byte(`{"broken":`))
	assert.Error(t, err)

	_, err = inference.DecodeJSON([]byte(``))
	assert.Error(t, err)
}
