package section

import (
	"fmt"

	"github.com/arloliu/blmap/errs"
)

// Sprite is the 44-byte base sprite record.
type Sprite struct {
	X            int32
	Y            int32
	Z            int32
	Stat         SpriteStat
	Picnum       int16
	Shade        int8
	Palette      uint8
	ClipDistance uint8
	Filler       uint8
	RepeatX      uint8
	RepeatY      uint8
	OffsetX      int8
	OffsetY      int8
	Sector       int16 // owning sector index
	Status       int16 // status list
	Theta        int16 // angle, 2048 units per turn
	Owner        int16
	VelocityX    int16
	VelocityY    int16
	VelocityZ    int16
	Tags         [TagCount]int16
}

// ParseSprite parses a base sprite record from the first SpriteSize bytes of data.
func ParseSprite(data []byte) (Sprite, error) {
	if len(data) < SpriteSize {
		return Sprite{}, fmt.Errorf("%w: sprite needs %d bytes, have %d", errs.ErrTruncatedInput, SpriteSize, len(data))
	}

	r := fieldReader{data: data}

	return Sprite{
		X:            r.i32(),
		Y:            r.i32(),
		Z:            r.i32(),
		Stat:         ParseSpriteStat(r.u16()),
		Picnum:       r.i16(),
		Shade:        r.i8(),
		Palette:      r.u8(),
		ClipDistance: r.u8(),
		Filler:       r.u8(),
		RepeatX:      r.u8(),
		RepeatY:      r.u8(),
		OffsetX:      r.i8(),
		OffsetY:      r.i8(),
		Sector:       r.i16(),
		Status:       r.i16(),
		Theta:        r.i16(),
		Owner:        r.i16(),
		VelocityX:    r.i16(),
		VelocityY:    r.i16(),
		VelocityZ:    r.i16(),
		Tags:         r.tags(),
	}, nil
}

// HasExtension reports whether an XSprite record follows this sprite.
func (s Sprite) HasExtension() bool {
	return HasExtension(s.Tags)
}

// Bytes returns the plaintext wire form of the sprite.
func (s *Sprite) Bytes() []byte {
	var b [SpriteSize]byte
	s.WriteToSlice(b[:], 0)

	return b[:]
}

// WriteToSlice writes the sprite at data[offset:] and returns the next position.
func (s *Sprite) WriteToSlice(data []byte, offset int) int {
	w := fieldWriter{data: data, off: offset}
	w.i32(s.X)
	w.i32(s.Y)
	w.i32(s.Z)
	w.u16(s.Stat.Uint16())
	w.i16(s.Picnum)
	w.i8(s.Shade)
	w.u8(s.Palette)
	w.u8(s.ClipDistance)
	w.u8(s.Filler)
	w.u8(s.RepeatX)
	w.u8(s.RepeatY)
	w.i8(s.OffsetX)
	w.i8(s.OffsetY)
	w.i16(s.Sector)
	w.i16(s.Status)
	w.i16(s.Theta)
	w.i16(s.Owner)
	w.i16(s.VelocityX)
	w.i16(s.VelocityY)
	w.i16(s.VelocityZ)
	w.tags(s.Tags)

	return w.off
}
