package section

import (
	"fmt"

	"github.com/arloliu/blmap/errs"
)

// Wall is the 32-byte base wall record.
type Wall struct {
	X          int32
	Y          int32
	Point2     int16 // index of the next wall point in the loop
	NextWall   int16 // -1 for a solid wall
	NextSector int16 // -1 for a solid wall
	Stat       WallStat
	Picnum     int16
	OverPicnum int16 // masked or one-way texture
	Shade      int8
	Palette    uint8
	RepeatX    uint8
	RepeatY    uint8
	PanningX   uint8
	PanningY   uint8
	Tags       [TagCount]int16
}

// ParseWall parses a base wall record from the first WallSize bytes of data.
func ParseWall(data []byte) (Wall, error) {
	if len(data) < WallSize {
		return Wall{}, fmt.Errorf("%w: wall needs %d bytes, have %d", errs.ErrTruncatedInput, WallSize, len(data))
	}

	r := fieldReader{data: data}

	return Wall{
		X:          r.i32(),
		Y:          r.i32(),
		Point2:     r.i16(),
		NextWall:   r.i16(),
		NextSector: r.i16(),
		Stat:       ParseWallStat(r.u16()),
		Picnum:     r.i16(),
		OverPicnum: r.i16(),
		Shade:      r.i8(),
		Palette:    r.u8(),
		RepeatX:    r.u8(),
		RepeatY:    r.u8(),
		PanningX:   r.u8(),
		PanningY:   r.u8(),
		Tags:       r.tags(),
	}, nil
}

// HasExtension reports whether an XWall record follows this wall in the stream.
func (w Wall) HasExtension() bool {
	return HasExtension(w.Tags)
}

// Bytes returns the plaintext wire form of the wall.
func (w *Wall) Bytes() []byte {
	var b [WallSize]byte
	w.WriteToSlice(b[:], 0)

	return b[:]
}

// WriteToSlice writes the wall at data[offset:] and returns the next position.
func (w *Wall) WriteToSlice(data []byte, offset int) int {
	fw := fieldWriter{data: data, off: offset}
	fw.i32(w.X)
	fw.i32(w.Y)
	fw.i16(w.Point2)
	fw.i16(w.NextWall)
	fw.i16(w.NextSector)
	fw.u16(w.Stat.Uint16())
	fw.i16(w.Picnum)
	fw.i16(w.OverPicnum)
	fw.i8(w.Shade)
	fw.u8(w.Palette)
	fw.u8(w.RepeatX)
	fw.u8(w.RepeatY)
	fw.u8(w.PanningX)
	fw.u8(w.PanningY)
	fw.tags(w.Tags)

	return fw.off
}
