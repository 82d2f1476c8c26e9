package record

import (
	"fmt"

	"github.com/arloliu/blmap/crypt"
	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/format"
)

// Batch is the result of a kind-generic decode. Only the slice matching Kind is set.
type Batch struct {
	Kind    format.RecordKind
	Sectors []Sector
	Walls   []Wall
	Sprites []Sprite
	End     int // offset just past the last consumed byte
}

// Len returns the number of decoded records.
func (b Batch) Len() int {
	switch b.Kind {
	case format.KindSector:
		return len(b.Sectors)
	case format.KindWall:
		return len(b.Walls)
	case format.KindSprite:
		return len(b.Sprites)
	default:
		return 0
	}
}

// Consumed returns the number of buffer bytes the batch occupied.
func (b Batch) Consumed() int {
	switch b.Kind {
	case format.KindSector:
		return ConsumedBytes(b.Sectors)
	case format.KindWall:
		return ConsumedBytes(b.Walls)
	case format.KindSprite:
		return ConsumedBytes(b.Sprites)
	default:
		return 0
	}
}

var defaultDecoder = &Decoder{scope: format.CipherPerSegment}

// DecodeMany decodes count records of kind with the default decoder.
//
// See (*Decoder).DecodeMany.
func DecodeMany(buf []byte, offset, count, key int, kind format.RecordKind) (Batch, error) {
	return defaultDecoder.DecodeMany(buf, offset, count, key, kind)
}

// DecodeMany decodes count records of kind starting at offset.
//
// key must fit in a byte. On error the returned Batch has End == offset and no records.
func (d *Decoder) DecodeMany(buf []byte, offset, count, key int, kind format.RecordKind) (Batch, error) {
	if !kind.Valid() {
		return Batch{End: offset}, fmt.Errorf("%w: %w %d", errs.ErrInvalidArgument, errs.ErrInvalidRecordKind, kind)
	}

	k, err := crypt.KeyFromInt(key)
	if err != nil {
		return Batch{Kind: kind, End: offset}, err
	}

	batch := Batch{Kind: kind}
	switch kind {
	case format.KindSector:
		batch.Sectors, batch.End, err = d.DecodeSectors(buf, offset, count, k)
	case format.KindWall:
		batch.Walls, batch.End, err = d.DecodeWalls(buf, offset, count, k)
	case format.KindSprite:
		batch.Sprites, batch.End, err = d.DecodeSprites(buf, offset, count, k)
	}
	if err != nil {
		return Batch{Kind: kind, End: offset}, err
	}

	return batch, nil
}
