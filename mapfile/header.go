package mapfile

import (
	"bytes"
	"fmt"

	"github.com/arloliu/blmap/endian"
	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/section"
)

// Header block sizes in bytes.
const (
	VersionHeaderSize = 6
	StartHeaderSize   = 16
	SkyHeaderSize     = 11
	CountHeaderSize   = 10
	ExtraHeaderSize   = 128
	ChecksumSize      = 4
)

// Magic opens every map file.
var Magic = [4]byte{'B', 'L', 'M', 0x1a}

var le = endian.GetLittleEndianEngine()

// Version is the map format version stored after the magic.
type Version struct {
	Major uint8
	Minor uint8
}

var (
	Version7  = Version{Major: 7, Minor: 0} // encrypted, with extra header
	Version63 = Version{Major: 6, Minor: 3} // plaintext
)

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Supported reports whether v is 7.0 or 6.3.
func (v Version) Supported() bool {
	return v == Version7 || v == Version63
}

// Encrypted reports whether headers and base records are XOR-obfuscated.
func (v Version) Encrypted() bool {
	return v == Version7
}

// Position is a point in map units.
type Position struct {
	X, Y, Z int32
}

// Header collects the fixed header blocks that precede the sky offsets.
type Header struct {
	Version Version

	// start block
	Start       Position
	StartTheta  int16
	StartSector int16

	// sky block
	SkyBits      int16
	Visibility   int32
	SongID       [4]byte
	ParallaxType uint8

	// count block
	Revisions   int32
	SectorCount int16
	WallCount   int16
	SpriteCount int16

	// Extra is present in version 7 maps only.
	Extra *ExtraHeader
}

// ExtraHeader is the 128-byte block carried by version 7 maps.
type ExtraHeader struct {
	Copyright   [57]byte
	Unknown     [7]byte
	XSpriteSize uint32
	XWallSize   uint32
	XSectorSize uint32
	Unknown2    [52]byte
}

// CopyrightString returns the copyright text without trailing NULs.
func (e *ExtraHeader) CopyrightString() string {
	return string(bytes.TrimRight(e.Copyright[:], "\x00"))
}

// Validate checks the advertised extension sizes. Zero means "not stated".
func (e *ExtraHeader) Validate() error {
	checks := []struct {
		name string
		got  uint32
		want int
	}{
		{"xsprite", e.XSpriteSize, section.XSpriteSize},
		{"xwall", e.XWallSize, section.XWallSize},
		{"xsector", e.XSectorSize, section.XSectorSize},
	}
	for _, c := range checks {
		if c.got != 0 && c.got != uint32(c.want) { //nolint: gosec
			return fmt.Errorf("%w: %s is %d bytes, expected %d", errs.ErrExtensionSizeMismatch, c.name, c.got, c.want)
		}
	}

	return nil
}

func needBytes(data []byte, size int, block string) error {
	if len(data) < size {
		return fmt.Errorf("%w: %s header needs %d bytes, have %d", errs.ErrTruncatedInput, block, size, len(data))
	}

	return nil
}

// parseVersion reads the magic and version from the first VersionHeaderSize bytes.
func parseVersion(data []byte) (Version, error) {
	if err := needBytes(data, VersionHeaderSize, "version"); err != nil {
		return Version{}, err
	}
	if !bytes.Equal(data[0:4], Magic[:]) {
		return Version{}, fmt.Errorf("%w: % x", errs.ErrInvalidMagic, data[0:4])
	}

	v := Version{Minor: data[4], Major: data[5]}
	if !v.Supported() {
		return v, fmt.Errorf("%w: %s", errs.ErrUnsupportedVersion, v)
	}

	return v, nil
}

func (h *Header) parseStart(data []byte) error {
	if err := needBytes(data, StartHeaderSize, "start"); err != nil {
		return err
	}

	h.Start.X = endian.Int32(le, data[0:4])
	h.Start.Y = endian.Int32(le, data[4:8])
	h.Start.Z = endian.Int32(le, data[8:12])
	h.StartTheta = endian.Int16(le, data[12:14])
	h.StartSector = endian.Int16(le, data[14:16])

	return nil
}

func (h *Header) parseSky(data []byte) error {
	if err := needBytes(data, SkyHeaderSize, "sky"); err != nil {
		return err
	}

	h.SkyBits = endian.Int16(le, data[0:2])
	h.Visibility = endian.Int32(le, data[2:6])
	copy(h.SongID[:], data[6:10])
	h.ParallaxType = data[10]

	return nil
}

func (h *Header) parseCounts(data []byte) error {
	if err := needBytes(data, CountHeaderSize, "count"); err != nil {
		return err
	}

	h.Revisions = endian.Int32(le, data[0:4])
	h.SectorCount = endian.Int16(le, data[4:6])
	h.WallCount = endian.Int16(le, data[6:8])
	h.SpriteCount = endian.Int16(le, data[8:10])

	return nil
}

func parseExtra(data []byte) (*ExtraHeader, error) {
	if err := needBytes(data, ExtraHeaderSize, "extra"); err != nil {
		return nil, err
	}

	e := &ExtraHeader{}
	copy(e.Copyright[:], data[0:57])
	copy(e.Unknown[:], data[57:64])
	e.XSpriteSize = le.Uint32(data[64:68])
	e.XWallSize = le.Uint32(data[68:72])
	e.XSectorSize = le.Uint32(data[72:76])
	copy(e.Unknown2[:], data[76:128])

	return e, nil
}
