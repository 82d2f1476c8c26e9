package section

import (
	"fmt"

	"github.com/arloliu/blmap/errs"
)

// Sector is the 40-byte base sector record.
type Sector struct {
	FirstWall       int16           // byte offset 0-1, index of the first wall of the loop
	WallCount       int16           // byte offset 2-3
	CeilingZ        int32           // byte offset 4-7
	FloorZ          int32           // byte offset 8-11
	CeilingStat     SectorStat      // byte offset 12-13
	FloorStat       SectorStat      // byte offset 14-15
	CeilingPicnum   int16           // byte offset 16-17
	CeilingHeinum   int16           // byte offset 18-19, slope
	CeilingShade    int8            // byte offset 20
	CeilingPalette  uint8           // byte offset 21
	CeilingXPanning uint8           // byte offset 22
	CeilingYPanning uint8           // byte offset 23
	FloorPicnum     int16           // byte offset 24-25
	FloorHeinum     int16           // byte offset 26-27
	FloorShade      int8            // byte offset 28
	FloorPalette    uint8           // byte offset 29
	FloorXPanning   uint8           // byte offset 30
	FloorYPanning   uint8           // byte offset 31
	Visibility      uint8           // byte offset 32
	Filler          uint8           // byte offset 33
	Tags            [TagCount]int16 // byte offset 34-39, Tags[2] > 0 means an XSector follows
}

// ParseSector parses a base sector record from the first SectorSize bytes of data.
//
// The bytes must already be decrypted.
func ParseSector(data []byte) (Sector, error) {
	if len(data) < SectorSize {
		return Sector{}, fmt.Errorf("%w: sector needs %d bytes, have %d", errs.ErrTruncatedInput, SectorSize, len(data))
	}

	r := fieldReader{data: data}

	return Sector{
		FirstWall:       r.i16(),
		WallCount:       r.i16(),
		CeilingZ:        r.i32(),
		FloorZ:          r.i32(),
		CeilingStat:     ParseSectorStat(r.u16()),
		FloorStat:       ParseSectorStat(r.u16()),
		CeilingPicnum:   r.i16(),
		CeilingHeinum:   r.i16(),
		CeilingShade:    r.i8(),
		CeilingPalette:  r.u8(),
		CeilingXPanning: r.u8(),
		CeilingYPanning: r.u8(),
		FloorPicnum:     r.i16(),
		FloorHeinum:     r.i16(),
		FloorShade:      r.i8(),
		FloorPalette:    r.u8(),
		FloorXPanning:   r.u8(),
		FloorYPanning:   r.u8(),
		Visibility:      r.u8(),
		Filler:          r.u8(),
		Tags:            r.tags(),
	}, nil
}

// HasExtension reports whether an XSector record follows this sector.
func (s Sector) HasExtension() bool {
	return HasExtension(s.Tags)
}

// Bytes returns the plaintext wire form of the sector.
func (s *Sector) Bytes() []byte {
	var b [SectorSize]byte
	s.WriteToSlice(b[:], 0)

	return b[:]
}

// WriteToSlice writes the sector at data[offset:] and returns the next position.
//
// data must have room for SectorSize bytes at offset.
func (s *Sector) WriteToSlice(data []byte, offset int) int {
	w := fieldWriter{data: data, off: offset}
	w.i16(s.FirstWall)
	w.i16(s.WallCount)
	w.i32(s.CeilingZ)
	w.i32(s.FloorZ)
	w.u16(s.CeilingStat.Uint16())
	w.u16(s.FloorStat.Uint16())
	w.i16(s.CeilingPicnum)
	w.i16(s.CeilingHeinum)
	w.i8(s.CeilingShade)
	w.u8(s.CeilingPalette)
	w.u8(s.CeilingXPanning)
	w.u8(s.CeilingYPanning)
	w.i16(s.FloorPicnum)
	w.i16(s.FloorHeinum)
	w.i8(s.FloorShade)
	w.u8(s.FloorPalette)
	w.u8(s.FloorXPanning)
	w.u8(s.FloorYPanning)
	w.u8(s.Visibility)
	w.u8(s.Filler)
	w.tags(s.Tags)

	return w.off
}
