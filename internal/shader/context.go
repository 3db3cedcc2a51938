package shader

import "github.com/paxgfx/pax/internal/pcolor"

// Context is built once per draw from a Shader record (spec.md §4.7): the
// rasterization kernel calls Callback once per covered pixel.
type Context struct {
	Callback CallbackV1
	Args     any
	DoGetter bool
	IgnoreUV bool
	Skip     bool
	// Identity is true for a shader-less draw: the callback is a stand-in
	// that returns tint unchanged, and kernels should use the writer's
	// fast SetRange/MergeRange path instead of calling Callback per pixel.
	Identity bool
}

// identityCallback is used when a draw has no shader at all: it ignores
// existing and returns tint unchanged, so the raster kernel's writer
// selection (not this callback) is what decides plain-vs-merge behavior.
func identityCallback(tint, _ pcolor.Color, _, _ int, _, _ float64, _ any) pcolor.Color {
	return tint
}

// Build evaluates s's promise callback (if any) and returns the resolved
// per-draw Context. A nil Shader yields a context wrapping the identity
// callback with DoGetter=false (there is nothing to blend over without a
// shader to look at the existing pixel).
func Build(s *Shader, tintAlpha uint8) Context {
	if s == nil {
		return Context{Callback: identityCallback, DoGetter: false, Identity: true}
	}
	var promise Promise
	if s.PromiseCallback != nil {
		promise = s.PromiseCallback(s.Args)
	}
	skip := promise.Has(Invisible) || (s.AlphaPromise0 && tintAlpha == 0)
	cb := s.CallbackV1
	if cb == nil && s.CallbackV0 != nil {
		v0 := s.CallbackV0
		// v0 adapter (spec.md §4.7): supply base <- base, then composite
		// the returned color over existing via merge.
		cb = func(tint, existing pcolor.Color, x, y int, u, v float64, args any) pcolor.Color {
			out := v0(tint, x, y, u, v, args)
			return pcolor.Merge(existing, out)
		}
	}
	if cb == nil {
		cb = identityCallback
	}
	return Context{
		Callback: cb,
		Args:     s.Args,
		DoGetter: !promise.Has(IgnoreBase),
		IgnoreUV: promise.Has(IgnoreUVs),
		Skip:     skip,
	}
}

// WriterKind identifies the cheapest pixel writer a rasterization kernel
// can use for a draw, chosen from shader promises, buffer class, and
// tint alpha (spec.md §4.7).
type WriterKind int

const (
	// WriterElide means the draw is a no-op; skip the kernel entirely.
	WriterElide WriterKind = iota
	// WriterRaw overwrites each pixel with a pre-converted native value,
	// no blending (palette buffers, and non-palette opaque tint with no
	// shader, and shaders that promise alpha_promise_255 at full tint).
	WriterRaw
	// WriterMerge reads the existing pixel and alpha-blends over it.
	WriterMerge
)

// SelectWriter picks the fastest writer for a draw. isPalette reflects
// the destination buffer's pixel format class.
func SelectWriter(s *Shader, isPalette bool, tintAlpha uint8) WriterKind {
	if isPalette {
		return WriterRaw
	}
	if s == nil {
		switch {
		case tintAlpha == 255:
			return WriterRaw
		case tintAlpha == 0:
			return WriterElide
		default:
			return WriterMerge
		}
	}
	if s.AlphaPromise0 && tintAlpha == 0 {
		return WriterElide
	}
	if s.AlphaPromise255 && tintAlpha == 255 {
		return WriterRaw
	}
	return WriterMerge
}
