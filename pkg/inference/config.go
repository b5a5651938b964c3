/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Configuration for the type inference engine. Provides validated
process-wide settings with atomic updates and per-call snapshots, so a traversal
can never observe a torn mix of old and new settings.
*/

package inference

import (
	"strings"
	"sync"
)

// Mode selects how an array's object shapes are combined
type Mode string

const (
	// ModeMerge collapses all observed shapes into one object type with
	// optional fields for keys absent from some inputs
	ModeMerge Mode = "merge"
	// ModeUnion preserves each distinct observed shape as a union variant
	ModeUnion Mode = "union"
)

// IndentKind selects the indentation character
type IndentKind string

const (
	IndentSpace IndentKind = "space"
	IndentTab   IndentKind = "tab"
)

// ArrayStyle selects the array type syntax
type ArrayStyle string

const (
	// StylePostfix renders arrays as T[]
	StylePostfix ArrayStyle = "postfix"
	// StyleGeneric renders arrays as Array<T>
	StyleGeneric ArrayStyle = "generic"
)

// Config holds the settings read by every inference call
type Config struct {
	Mode       Mode       `json:"mode"`
	IndentSize int        `json:"indent_size"`
	IndentKind IndentKind `json:"indent_kind"`
	ArrayStyle ArrayStyle `json:"array_style"`
}

// DefaultConfig returns the engine defaults: merge mode, two-space
// indentation, postfix arrays.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeMerge,
		IndentSize: 2,
		IndentKind: IndentSpace,
		ArrayStyle: StylePostfix,
	}
}

// normalized replaces any invalid or zero field with its default, so a
// partially filled Config is always usable.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Mode != ModeMerge && c.Mode != ModeUnion {
		c.Mode = def.Mode
	}
	if c.IndentSize <= 0 {
		c.IndentSize = def.IndentSize
	}
	if c.IndentKind != IndentSpace && c.IndentKind != IndentTab {
		c.IndentKind = def.IndentKind
	}
	if c.ArrayStyle != StylePostfix && c.ArrayStyle != StyleGeneric {
		c.ArrayStyle = def.ArrayStyle
	}
	return c
}

// IndentUnit returns one level of indentation: IndentSize repetitions of
// a single space or tab, derived deterministically from the settings.
func (c Config) IndentUnit() string {
	ch := " "
	if c.IndentKind == IndentTab {
		ch = "\t"
	}
	return strings.Repeat(ch, c.IndentSize)
}

// indent returns the indentation prefix for a nesting depth
func (c Config) indent(depth int) string {
	return strings.Repeat(c.IndentUnit(), depth)
}

// Options is a partial configuration update. Zero-valued fields are
// treated as unset.
type Options struct {
	Mode       Mode
	IndentSize int
	IndentKind IndentKind
	ArrayStyle ArrayStyle
}

var (
	configMu      sync.RWMutex
	currentConfig = DefaultConfig()
)

// Configure applies the recognized, valid fields of opts to the
// process-wide configuration and silently ignores the rest: an invalid
// mode, style, kind, or non-positive indent size leaves the prior value
// in place. The update is atomic; inference calls already in flight keep
// the snapshot they captured at entry.
func Configure(opts Options) {
	configMu.Lock()
	defer configMu.Unlock()

	if opts.Mode == ModeMerge || opts.Mode == ModeUnion {
		currentConfig.Mode = opts.Mode
	}
	if opts.IndentSize > 0 {
		currentConfig.IndentSize = opts.IndentSize
	}
	if opts.IndentKind == IndentSpace || opts.IndentKind == IndentTab {
		currentConfig.IndentKind = opts.IndentKind
	}
	if opts.ArrayStyle == StylePostfix || opts.ArrayStyle == StyleGeneric {
		currentConfig.ArrayStyle = opts.ArrayStyle
	}
}

// GetConfig returns a snapshot of the current settings. Mutating the
// returned value has no effect on the live configuration; use Configure.
func GetConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return currentConfig
}

// snapshotConfig captures the live settings once, optionally overriding
// the mode for a single call.
func snapshotConfig(mode Mode) Config {
	cfg := GetConfig()
	if mode == ModeMerge || mode == ModeUnion {
		cfg.Mode = mode
	}
	return cfg
}
