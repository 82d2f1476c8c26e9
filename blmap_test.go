package blmap

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blmap/crypt"
	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/format"
	"github.com/arloliu/blmap/record"
	"github.com/arloliu/blmap/section"
)

func encryptedWalls(key byte, walls ...section.Wall) []byte {
	var buf []byte
	for _, w := range walls {
		b := w.Bytes()
		crypt.Apply(b, key)
		buf = append(buf, b...)
	}

	return buf
}

func TestDecodeMany(t *testing.T) {
	walls := []section.Wall{
		{X: 0, Y: 0, Point2: 1, NextWall: -1, NextSector: -1},
		{X: 512, Y: 0, Point2: 0, NextWall: -1, NextSector: -1},
	}
	buf := encryptedWalls(0x6D, walls...)

	batch, err := DecodeMany(buf, 0, 2, 0x6D, format.KindWall)
	require.NoError(t, err)
	require.Equal(t, 2, batch.Len())
	require.Equal(t, len(buf), batch.End)
	require.Equal(t, walls[1], batch.Walls[1].Base)
}

func TestDecodeMany_FailureKeepsBuffer(t *testing.T) {
	buf := encryptedWalls(0x10, section.Wall{X: 1}, section.Wall{X: 2})
	orig := bytes.Clone(buf)

	batch, err := DecodeMany(buf, 0, 3, 0x10, format.KindWall)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	require.Equal(t, 0, batch.End)
	require.Equal(t, orig, buf)

	_, err = DecodeMany(buf, 0, 1, 256, format.KindWall)
	require.ErrorIs(t, err, errs.ErrInvalidKey)
}

func TestNewDecoder(t *testing.T) {
	dec, err := NewDecoder(record.WithCipherScope(format.CipherNone), record.WithPreserveInput(true))
	require.NoError(t, err)
	require.Equal(t, format.CipherNone, dec.CipherScope())
	require.True(t, dec.PreservesInput())
}

func TestParseMap_RejectsGarbage(t *testing.T) {
	_, err := ParseMap([]byte("not a map file"))
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestFingerprint(t *testing.T) {
	require.Equal(t, uint64(0xef46db3751d8e999), Fingerprint(nil))
	require.NotEqual(t, Fingerprint([]byte("E1M1")), Fingerprint([]byte("E1M2")))
}

func ExampleDecodeMany() {
	wall := section.Wall{X: -1024, Y: 2048, Point2: 1, NextWall: -1, NextSector: -1, Tags: [3]int16{0, 0, 0}}
	buf := wall.Bytes()
	crypt.Apply(buf, 0x4D)

	batch, err := DecodeMany(buf, 0, 1, 0x4D, format.KindWall)
	if err != nil {
		fmt.Println(err)
		return
	}

	w := batch.Walls[0]
	fmt.Println(w.Base.X, w.Base.Y, w.Ext.State, batch.End)
	// Output: -1024 2048 Default 32
}
