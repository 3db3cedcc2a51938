package font

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildMonospaceFontBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(magic[:])
	binary.Write(&buf, binary.LittleEndian, uint8(formatVersion))
	buf.WriteString("testfont")
	buf.WriteByte(0)
	binary.Write(&buf, binary.LittleEndian, uint8(8))  // default size
	binary.Write(&buf, binary.LittleEndian, uint8(0))  // recommend_aa
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // range count

	binary.Write(&buf, binary.LittleEndian, uint8(Monospace))
	binary.Write(&buf, binary.LittleEndian, uint32('A'))
	binary.Write(&buf, binary.LittleEndian, uint32('B'))
	binary.Write(&buf, binary.LittleEndian, uint8(8)) // height
	binary.Write(&buf, binary.LittleEndian, uint8(1)) // bpp
	binary.Write(&buf, binary.LittleEndian, uint16(8)) // glyph width
	bitmap := make([]byte, 16)
	binary.Write(&buf, binary.LittleEndian, uint32(len(bitmap)))
	buf.Write(bitmap)
	return buf.Bytes()
}

func TestLoadRoundTripsMonospaceRange(t *testing.T) {
	data := buildMonospaceFontBytes(t)
	f, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, "testfont", f.Name)
	require.Equal(t, 8, f.DefaultSize)
	require.Len(t, f.Ranges, 1)
	require.Equal(t, rune('A'), f.Ranges[0].First)
	require.Equal(t, rune('B'), f.Ranges[0].Last)
	require.Equal(t, 16, len(f.Ranges[0].Bitmap))
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildMonospaceFontBytes(t)
	data[0] = 'X'
	_, err := Load(data)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	data := buildMonospaceFontBytes(t)
	data[4] = 99
	_, err := Load(data)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}
