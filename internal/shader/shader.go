// Package shader implements PAX's programmable per-pixel shader stage
// (spec.md §4.7): a versioned record, a v0→v1 compatibility adapter, and
// the promise-driven selection of the cheapest pixel writer for a draw.
//
// Grounded on the teacher's span-generator dispatch idiom (agg_go's
// internal/span chooses a generator function per draw) but built around
// PAX's own contract: a shader is a user callback plus declared promises
// the rasterizer is allowed to trust without re-checking every pixel.
package shader

import "github.com/paxgfx/pax/internal/pcolor"

// Promise is a bitmask of static guarantees a shader makes about its own
// output, returned once per draw by an optional promise callback.
type Promise uint8

const (
	// Opaque promises output alpha is always 255.
	Opaque Promise = 1 << iota
	// Invisible promises output alpha is always 0; the draw is a no-op.
	Invisible
	// Cutout promises output alpha is always 0 or 255, never partial.
	Cutout
	// IgnoreUVs promises the callback does not use its u,v arguments.
	IgnoreUVs
	// IgnoreBase promises the callback does not read the existing pixel.
	IgnoreBase
)

// Has reports whether p includes flag.
func (p Promise) Has(flag Promise) bool { return p&flag != 0 }

// CallbackV0 is the original per-pixel shader signature: it receives the
// draw's tint and the pixel's position/UV and returns the output color,
// leaving blending to the caller.
type CallbackV0 func(tint pcolor.Color, x, y int, u, v float64, args any) pcolor.Color

// CallbackV1 inserts the pre-existing pixel value as a second argument,
// letting the shader itself decide how to blend against it.
type CallbackV1 func(tint, existing pcolor.Color, x, y int, u, v float64, args any) pcolor.Color

// schemaVersion is the only schema this package's adapters understand.
// A shader record built by something expecting a different ABI would
// fail SchemaOK, which mirrors the magic/version check spec.md describes
// rather than serving any memory-safety purpose in Go.
const schemaVersion = 1

// Shader is a versioned, programmable per-pixel draw stage (spec.md §3).
// Exactly one of CallbackV0 or CallbackV1 should be set; if both are,
// CallbackV1 takes precedence.
type Shader struct {
	SchemaVersion     int
	SchemaComplement  int
	RendererID        int
	PromiseCallback   func(args any) Promise
	CallbackV0        CallbackV0
	CallbackV1        CallbackV1
	Args              any
	AlphaPromise0     bool
	AlphaPromise255   bool
}

// New builds a v1 shader record with the schema fields pre-filled.
func New(cb CallbackV1, args any) *Shader {
	return &Shader{
		SchemaVersion:    schemaVersion,
		SchemaComplement: ^schemaVersion,
		CallbackV1:       cb,
		Args:             args,
	}
}

// NewV0 builds a shader record from a legacy v0 callback.
func NewV0(cb CallbackV0, args any) *Shader {
	return &Shader{
		SchemaVersion:    schemaVersion,
		SchemaComplement: ^schemaVersion,
		CallbackV0:       cb,
		Args:             args,
	}
}

// SchemaOK reports whether s's version/complement pair is internally
// consistent.
func (s *Shader) SchemaOK() bool {
	return s != nil && s.SchemaComplement == ^s.SchemaVersion
}
