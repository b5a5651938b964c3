/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config_test.go
Description: Tests for the inference configuration. Covers defaults, validated
partial updates with silent rejection of invalid fields, derived indent units,
and snapshot semantics of GetConfig and per-call captures.
*/

package inference_test

import (
	"testing"

	"github.com/Pinta365/type-detective/pkg/inference"
	"github.com/stretchr/testify/assert"
)

// resetConfig restores defaults after a test that touches the global
func resetConfig(t *testing.T) {
	t.Cleanup(func() {
		def := inference.DefaultConfig()
		inference.Configure(inference.Options{
			Mode:       def.Mode,
			IndentSize: def.IndentSize,
			IndentKind: def.IndentKind,
			ArrayStyle: def.ArrayStyle,
		})
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := inference.DefaultConfig()
	assert.Equal(t, inference.ModeMerge, cfg.Mode)
	assert.Equal(t, 2, cfg.IndentSize)
	assert.Equal(t, inference.IndentSpace, cfg.IndentKind)
	assert.Equal(t, inference.StylePostfix, cfg.ArrayStyle)
	assert.Equal(t, "  ", cfg.IndentUnit())
}

func TestConfigureAppliesValidFields(t *testing.T) {
	resetConfig(t)

	inference.Configure(inference.Options{
		Mode:       inference.ModeUnion,
		IndentSize: 4,
		IndentKind: inference.IndentTab,
		ArrayStyle: inference.StyleGeneric,
	})

	cfg := inference.GetConfig()
	assert.Equal(t, inference.ModeUnion, cfg.Mode)
	assert.Equal(t, 4, cfg.IndentSize)
	assert.Equal(t, inference.IndentTab, cfg.IndentKind)
	assert.Equal(t, inference.StyleGeneric, cfg.ArrayStyle)
	assert.Equal(t, "\t\t\t\t", cfg.IndentUnit())
}

func TestConfigureSilentlyIgnoresInvalidFields(t *testing.T) {
	resetConfig(t)

	before := inference.GetConfig()
	inference.Configure(inference.Options{
		Mode:       inference.Mode("bogus"),
		IndentSize: -3,
		IndentKind: inference.IndentKind("dots"),
		ArrayStyle: inference.ArrayStyle("curly"),
	})
	assert.Equal(t, before, inference.GetConfig())
}

func TestConfigurePartialUpdate(t *testing.T) {
	resetConfig(t)

	inference.Configure(inference.Options{IndentSize: 8})
	cfg := inference.GetConfig()
	assert.Equal(t, 8, cfg.IndentSize)
	assert.Equal(t, inference.ModeMerge, cfg.Mode, "unset fields keep prior values")
}

func TestGetConfigReturnsSnapshot(t *testing.T) {
	resetConfig(t)

	cfg := inference.GetConfig()
	cfg.IndentSize = 99
	assert.NotEqual(t, 99, inference.GetConfig().IndentSize)
}

func TestDerivedIndentUnit(t *testing.T) {
	cases := []struct {
		size int
		kind inference.IndentKind
		want string
	}{
		{1, inference.IndentSpace, " "},
		{4, inference.IndentSpace, "    "},
		{1, inference.IndentTab, "\t"},
		{2, inference.IndentTab, "\t\t"},
	}
	for _, tc := range cases {
		cfg := inference.Config{IndentSize: tc.size, IndentKind: tc.kind}
		assert.Equal(t, tc.want, cfg.IndentUnit())
	}
}

func TestNewNormalizesZeroConfig(t *testing.T) {
	engine := inference.New(inference.Config{})
	assert.Equal(t, inference.DefaultConfig(), engine.Config())
}

func TestInferTypeModeOverride(t *testing.T) {
	resetConfig(t)
	inference.Configure(inference.Options{Mode: inference.ModeMerge})

	value := []interface{}{
		inference.NewObject().Set("a", 1),
		inference.NewObject().Set("b", "x"),
	}

	merged := inference.InferType(value, 0, "")
	assert.Contains(t, merged, "a?: number;")

	union := inference.InferType(value, 0, inference.ModeUnion)
	assert.Contains(t, union, "| ")
	assert.NotContains(t, union, "?")
}

func TestConfigureAffectsSubsequentCallsOnly(t *testing.T) {
	resetConfig(t)

	value := []interface{}{1, "a"}
	inference.Configure(inference.Options{ArrayStyle: inference.StylePostfix})
	assert.Equal(t, "(number | string)[]", inference.InferType(value, 0, ""))

	inference.Configure(inference.Options{ArrayStyle: inference.StyleGeneric})
	assert.Equal(t, "Array<number | string>", inference.InferType(value, 0, ""))
}
