package font

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

var magic = [4]byte{'P', 'A', 'X', 'F'}

const formatVersion = 1

// ErrBadMagic and ErrUnsupportedVersion are returned by Load for inputs
// that aren't PAX font files, or are a version this loader doesn't
// understand (spec.md §7's decode_error/unsupported taxonomy).
var (
	ErrBadMagic            = errors.New("font: bad magic")
	ErrUnsupportedVersion  = errors.New("font: unsupported version")
)

func readCString(r *bytes.Reader) (string, error) {
	var buf []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", errors.Wrap(err, "font: truncated name")
		}
		if b == 0 {
			return string(buf), nil
		}
		buf = append(buf, b)
	}
}

// Load decodes a version-1 PAX font file (spec.md §6): magic, version,
// null-terminated name, default size, recommend-AA flag, range count,
// then each range's header, optional variable-pitch glyph records, and
// raw bitmap bytes.
func Load(data []byte) (*Font, error) {
	r := bytes.NewReader(data)

	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, errors.Wrap(err, "font: reading magic")
	}
	if gotMagic != magic {
		return nil, ErrBadMagic
	}

	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, errors.Wrap(err, "font: reading version")
	}
	if version != formatVersion {
		return nil, ErrUnsupportedVersion
	}

	name, err := readCString(r)
	if err != nil {
		return nil, err
	}

	var defaultSize, recommendAA uint8
	if err := binary.Read(r, binary.LittleEndian, &defaultSize); err != nil {
		return nil, errors.Wrap(err, "font: reading default size")
	}
	if err := binary.Read(r, binary.LittleEndian, &recommendAA); err != nil {
		return nil, errors.Wrap(err, "font: reading recommend_aa")
	}

	var rangeCount uint16
	if err := binary.Read(r, binary.LittleEndian, &rangeCount); err != nil {
		return nil, errors.Wrap(err, "font: reading range count")
	}

	f := &Font{
		Name:        name,
		DefaultSize: int(defaultSize),
		RecommendAA: recommendAA != 0,
		Ranges:      make([]Range, rangeCount),
	}

	for i := 0; i < int(rangeCount); i++ {
		rg, err := readRange(r)
		if err != nil {
			return nil, errors.Wrapf(err, "font: reading range %d", i)
		}
		f.Ranges[i] = rg
	}
	return f, nil
}

func readRange(r *bytes.Reader) (Range, error) {
	var kind, height, bpp uint8
	var first, last uint32
	var glyphWidth uint16

	if err := binary.Read(r, binary.LittleEndian, &kind); err != nil {
		return Range{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &first); err != nil {
		return Range{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &last); err != nil {
		return Range{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return Range{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &bpp); err != nil {
		return Range{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &glyphWidth); err != nil {
		return Range{}, err
	}

	rg := Range{
		Kind:       RangeKind(kind),
		First:      rune(first),
		Last:       rune(last),
		Height:     int(height),
		BPP:        int(bpp),
		GlyphWidth: int(glyphWidth),
	}

	if rg.Kind == Variable {
		count := int(last-first) + 1
		rg.Records = make([]GlyphRecord, count)
		for i := 0; i < count; i++ {
			var drawX, drawY int16
			var drawW, drawH, advance uint16
			var bitmapOffset uint32
			if err := binary.Read(r, binary.LittleEndian, &drawX); err != nil {
				return Range{}, err
			}
			if err := binary.Read(r, binary.LittleEndian, &drawY); err != nil {
				return Range{}, err
			}
			if err := binary.Read(r, binary.LittleEndian, &drawW); err != nil {
				return Range{}, err
			}
			if err := binary.Read(r, binary.LittleEndian, &drawH); err != nil {
				return Range{}, err
			}
			if err := binary.Read(r, binary.LittleEndian, &bitmapOffset); err != nil {
				return Range{}, err
			}
			if err := binary.Read(r, binary.LittleEndian, &advance); err != nil {
				return Range{}, err
			}
			rg.Records[i] = GlyphRecord{
				DrawX: int(drawX), DrawY: int(drawY),
				DrawW: int(drawW), DrawH: int(drawH),
				BitmapOffset: int(bitmapOffset), AdvanceWidth: int(advance),
			}
		}
	}

	var bitmapLen uint32
	if err := binary.Read(r, binary.LittleEndian, &bitmapLen); err != nil {
		return Range{}, err
	}
	bitmap := make([]byte, bitmapLen)
	if _, err := io.ReadFull(r, bitmap); err != nil {
		return Range{}, errors.Wrap(err, "font: reading bitmap")
	}
	rg.Bitmap = bitmap
	return rg, nil
}
