/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: typedetective_test.go
Description: Tests for the root package re-export surface. Verifies the public
entry points delegate to the inference engine.
*/

package typedetective_test

import (
	"testing"

	typedetective "github.com/Pinta365/type-detective"
	"github.com/stretchr/testify/assert"
)

func TestInferTypeFromRootPackage(t *testing.T) {
	obj := typedetective.NewObject().Set("id", 1).Set("name", "Alice")

	expected := "{\n" +
		"  id: number;\n" +
		"  name: string;\n" +
		"}"
	assert.Equal(t, expected, typedetective.InferType(obj, 0, ""))
	assert.Equal(t, expected, typedetective.DetectType(obj, 0, ""))
}

func TestConfigureFromRootPackage(t *testing.T) {
	t.Cleanup(func() {
		typedetective.Configure(typedetective.Options{
			Mode:       typedetective.ModeMerge,
			IndentSize: 2,
			IndentKind: typedetective.IndentSpace,
			ArrayStyle: typedetective.StylePostfix,
		})
	})

	typedetective.Configure(typedetective.Options{ArrayStyle: typedetective.StyleGeneric})
	assert.Equal(t, typedetective.StyleGeneric, typedetective.GetConfig().ArrayStyle)
	assert.Equal(t, "Array<unknown>", typedetective.InferType([]interface{}{}, 0, ""))
}

func TestSentinelValues(t *testing.T) {
	assert.Equal(t, "undefined", typedetective.InferType(typedetective.Undefined, 0, ""))
	assert.Equal(t, "symbol", typedetective.InferType(typedetective.Symbol("desc"), 0, ""))
}
