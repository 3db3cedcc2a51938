package shader

import (
	"testing"

	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/stretchr/testify/require"
)

func TestBuildNilShaderUsesIdentity(t *testing.T) {
	ctx := Build(nil, 255)
	require.False(t, ctx.DoGetter)
	require.False(t, ctx.Skip)
	out := ctx.Callback(pcolor.Red, pcolor.Blue, 0, 0, 0, 0, nil)
	require.Equal(t, pcolor.Red, out)
}

func TestBuildInvisiblePromiseSkips(t *testing.T) {
	s := New(nil, nil)
	s.PromiseCallback = func(any) Promise { return Invisible }
	ctx := Build(s, 255)
	require.True(t, ctx.Skip)
}

func TestBuildAlphaPromise0Skips(t *testing.T) {
	s := New(nil, nil)
	s.AlphaPromise0 = true
	ctx := Build(s, 0)
	require.True(t, ctx.Skip)
}

func TestBuildV0AdapterMerges(t *testing.T) {
	called := false
	v0 := func(tint pcolor.Color, x, y int, u, v float64, args any) pcolor.Color {
		called = true
		return pcolor.ARGB(128, 0, 0, 0)
	}
	s := NewV0(v0, nil)
	ctx := Build(s, 255)
	out := ctx.Callback(pcolor.White, pcolor.White, 0, 0, 0, 0, nil)
	require.True(t, called)
	require.NotEqual(t, pcolor.Color(0), out)
}

func TestSelectWriterPalette(t *testing.T) {
	require.Equal(t, WriterRaw, SelectWriter(nil, true, 128))
}

func TestSelectWriterNoShaderOpaque(t *testing.T) {
	require.Equal(t, WriterRaw, SelectWriter(nil, false, 255))
}

func TestSelectWriterNoShaderTransparent(t *testing.T) {
	require.Equal(t, WriterElide, SelectWriter(nil, false, 0))
}

func TestSelectWriterNoShaderPartial(t *testing.T) {
	require.Equal(t, WriterMerge, SelectWriter(nil, false, 128))
}

func TestSelectWriterShaderAlphaPromise255(t *testing.T) {
	s := New(nil, nil)
	s.AlphaPromise255 = true
	require.Equal(t, WriterRaw, SelectWriter(s, false, 255))
}

func TestSelectWriterShaderDefaultsToMerge(t *testing.T) {
	s := New(nil, nil)
	require.Equal(t, WriterMerge, SelectWriter(s, false, 200))
}

func TestSchemaOK(t *testing.T) {
	s := New(nil, nil)
	require.True(t, s.SchemaOK())
	s.SchemaComplement = 0
	require.False(t, s.SchemaOK())
}
