package font

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupFindsContainingRange(t *testing.T) {
	f := &Font{Ranges: []Range{
		{Kind: Monospace, First: 'A', Last: 'Z'},
		{Kind: Monospace, First: 'a', Last: 'z'},
	}}
	rg, idx, exact := f.Lookup('c')
	require.True(t, exact)
	require.Equal(t, rune('a'), rg.First)
	require.Equal(t, 2, idx)
}

func TestLookupFallsBackToSubstitute(t *testing.T) {
	f := &Font{Ranges: []Range{
		{Kind: Monospace, First: 0x0000, Last: 0x0001},
		{Kind: Monospace, First: 'A', Last: 'Z'},
	}}
	rg, idx, exact := f.Lookup(0x1234)
	require.False(t, exact)
	require.NotNil(t, rg)
	require.Equal(t, 1, idx)
}

func TestLookupNoSubstituteReturnsNil(t *testing.T) {
	f := &Font{Ranges: []Range{{Kind: Monospace, First: 'A', Last: 'Z'}}}
	rg, _, exact := f.Lookup(0x1234)
	require.Nil(t, rg)
	require.False(t, exact)
}

func TestBitAtReadsMSBFirst(t *testing.T) {
	// One row, one byte: 0b10000000 -> bit (0,0) set, rest clear.
	bitmap := []byte{0b10000000}
	require.True(t, BitAt(bitmap, 0, 1, 0, 0))
	require.False(t, BitAt(bitmap, 0, 1, 1, 0))
}
