package record

import (
	"fmt"

	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/format"
	"github.com/arloliu/blmap/section"
)

// Sector is a decoded base sector plus its optional XSector.
type Sector struct {
	Base section.Sector
	Ext  Extension[section.XSector]
}

// Wall is a decoded base wall plus its XWall, which is defaulted when not in the stream.
type Wall struct {
	Base section.Wall
	Ext  Extension[section.XWall]
}

// Sprite is a decoded base sprite plus its optional XSprite.
type Sprite struct {
	Base section.Sprite
	Ext  Extension[section.XSprite]
}

// Size returns the number of buffer bytes the record occupied.
func (r Sector) Size() int {
	if r.Ext.InStream() {
		return section.SectorSize + section.XSectorSize
	}

	return section.SectorSize
}

// Size returns the number of buffer bytes the record occupied.
func (r Wall) Size() int {
	if r.Ext.InStream() {
		return section.WallSize + section.XWallSize
	}

	return section.WallSize
}

// Size returns the number of buffer bytes the record occupied.
func (r Sprite) Size() int {
	if r.Ext.InStream() {
		return section.SpriteSize + section.XSpriteSize
	}

	return section.SpriteSize
}

// Sized is implemented by Sector, Wall and Sprite.
type Sized interface {
	Size() int
}

// ConsumedBytes sums the buffer footprint of records.
func ConsumedBytes[R Sized](records []R) int {
	n := 0
	for _, r := range records {
		n += r.Size()
	}

	return n
}

// BaseSize returns the base record size for kind.
func BaseSize(kind format.RecordKind) (int, error) {
	switch kind {
	case format.KindSector:
		return section.SectorSize, nil
	case format.KindWall:
		return section.WallSize, nil
	case format.KindSprite:
		return section.SpriteSize, nil
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidRecordKind, kind)
	}
}

// ExtensionSize returns the extension record size for kind.
func ExtensionSize(kind format.RecordKind) (int, error) {
	switch kind {
	case format.KindSector:
		return section.XSectorSize, nil
	case format.KindWall:
		return section.XWallSize, nil
	case format.KindSprite:
		return section.XSpriteSize, nil
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidRecordKind, kind)
	}
}

// Size returns the bytes taken by count records of kind, extensions of which
// carry an extension in the stream.
func Size(kind format.RecordKind, count, extensions int) (int, error) {
	if count < 0 || extensions < 0 || extensions > count {
		return 0, fmt.Errorf("%w: count=%d extensions=%d", errs.ErrInvalidArgument, count, extensions)
	}

	base, err := BaseSize(kind)
	if err != nil {
		return 0, err
	}
	ext, _ := ExtensionSize(kind)

	return count*base + extensions*ext, nil
}
