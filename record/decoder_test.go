package record

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/format"
	"github.com/arloliu/blmap/section"
)

func TestNewDecoder(t *testing.T) {
	d, err := NewDecoder()
	require.NoError(t, err)
	require.Equal(t, format.CipherPerSegment, d.CipherScope())
	require.False(t, d.PreservesInput())

	d, err = NewDecoder(WithCipherScope(format.CipherNone), WithPreserveInput(true))
	require.NoError(t, err)
	require.Equal(t, format.CipherNone, d.CipherScope())
	require.True(t, d.PreservesInput())

	_, err = NewDecoder(WithCipherScope(format.CipherScope(0)))
	require.ErrorIs(t, err, errs.ErrInvalidCipherScope)
}

// truncatedWalls returns three walls where the last one announces an
// extension the buffer does not contain.
func truncatedWalls(key byte, encrypt bool) []byte {
	s := new(stream)
	s.put((&section.Wall{X: 1, Tags: tags(1)}).Bytes(), key, encrypt)
	s.put((&section.XWall{Data1: 0x11}).Bytes(), key, encrypt)
	s.put((&section.Wall{X: 2}).Bytes(), key, encrypt)
	s.put((&section.Wall{X: 3, Tags: tags(1)}).Bytes(), key, encrypt)
	s.put(make([]byte, section.XWallSize/2), key, encrypt)

	return s.bytes()
}

func TestDecode_TruncationRestoresBuffer(t *testing.T) {
	const key = 0x5A

	for _, scope := range []format.CipherScope{format.CipherPerSegment, format.CipherBaseOnly, format.CipherNone} {
		t.Run(scope.String(), func(t *testing.T) {
			buf := truncatedWalls(key, scope.DecryptsBase())
			orig := bytes.Clone(buf)

			walls, end, err := newDecoder(t, WithCipherScope(scope)).DecodeWalls(buf, 0, 3, key)
			require.ErrorIs(t, err, errs.ErrTruncatedInput)
			require.ErrorContains(t, err, "Wall record 2")
			require.Nil(t, walls)
			require.Zero(t, end)
			require.Equal(t, orig, buf)
		})
	}
}

func TestDecode_PreserveInput(t *testing.T) {
	const key = 0xC3
	s := new(stream)
	s.put((&section.Sprite{X: 10, Tags: tags(1)}).Bytes(), key, true)
	s.put((&section.XSprite{ActorIndex: 42}).Bytes(), key, true)
	s.put((&section.Sprite{X: 20}).Bytes(), key, true)
	buf := s.bytes()
	orig := bytes.Clone(buf)

	preserved, end, err := newDecoder(t, WithPreserveInput(true)).DecodeSprites(buf, 0, 2, key)
	require.NoError(t, err)
	require.Equal(t, len(buf), end)
	require.Equal(t, orig, buf, "preserve mode must not write to the buffer")

	inPlace, end2, err := newDecoder(t).DecodeSprites(buf, 0, 2, key)
	require.NoError(t, err)
	require.Equal(t, end, end2)
	require.Equal(t, preserved, inPlace)
	require.NotEqual(t, orig, buf, "in-place mode leaves plaintext behind")

	require.Equal(t, uint16(42), inPlace[0].Ext.Value.ActorIndex)
	require.Equal(t, int32(20), inPlace[1].Base.X)
}

func TestDecode_InPlaceLeavesPlaintext(t *testing.T) {
	const key = 0x01
	wall := section.Wall{X: -7, Picnum: 99}
	plain := wall.Bytes()
	buf := new(stream).put(plain, key, true).bytes()

	_, _, err := newDecoder(t).DecodeWalls(buf, 0, 1, key)
	require.NoError(t, err)
	require.Equal(t, plain, buf)
}

func TestDecode_PreserveInputTruncation(t *testing.T) {
	const key = 0x77
	buf := truncatedWalls(key, true)
	orig := bytes.Clone(buf)

	_, _, err := newDecoder(t, WithPreserveInput(true)).DecodeWalls(buf, 0, 3, key)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	require.Equal(t, orig, buf)
}

func TestExtension(t *testing.T) {
	require.Equal(t, "Absent", ExtAbsent.String())
	require.Equal(t, "Default", ExtDefault.String())
	require.Equal(t, "FromStream", ExtFromStream.String())
	require.Equal(t, "Unknown", ExtState(9).String())

	e := defaulted[section.XWall]()
	v, ok := e.Get()
	require.True(t, ok)
	require.True(t, v.IsZero())
	require.False(t, e.InStream())

	_, ok = absent[section.XSector]().Get()
	require.False(t, ok)

	x := fromStream(section.XSprite{Locked: true})
	require.True(t, x.InStream())
	require.True(t, x.Value.Locked)
}

func TestSizeHelpers(t *testing.T) {
	tests := []struct {
		kind      format.RecordKind
		base, ext int
	}{
		{format.KindSector, 40, 60},
		{format.KindWall, 32, 24},
		{format.KindSprite, 44, 56},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			base, err := BaseSize(tt.kind)
			require.NoError(t, err)
			require.Equal(t, tt.base, base)

			ext, err := ExtensionSize(tt.kind)
			require.NoError(t, err)
			require.Equal(t, tt.ext, ext)

			n, err := Size(tt.kind, 5, 2)
			require.NoError(t, err)
			require.Equal(t, 5*tt.base+2*tt.ext, n)
		})
	}

	_, err := BaseSize(format.RecordKind(0))
	require.ErrorIs(t, err, errs.ErrInvalidRecordKind)

	_, err = Size(format.KindWall, 1, 2)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Size(format.KindWall, -1, 0)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}
