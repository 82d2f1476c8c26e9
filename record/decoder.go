package record

import (
	"fmt"

	"github.com/arloliu/blmap/crypt"
	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/format"
	"github.com/arloliu/blmap/internal/options"
	"github.com/arloliu/blmap/section"
)

// largest segment any layout reads
const maxSegmentSize = section.XSectorSize

// Decoder decodes runs of map records. The zero value is not usable; use NewDecoder.
type Decoder struct {
	scope    format.CipherScope
	preserve bool
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithCipherScope selects which segments are decrypted. Default: format.CipherPerSegment.
func WithCipherScope(scope format.CipherScope) DecoderOption {
	return options.New(func(d *Decoder) error {
		if !scope.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCipherScope, scope)
		}
		d.scope = scope

		return nil
	})
}

// WithPreserveInput makes the decoder decrypt into a scratch copy instead of the buffer.
func WithPreserveInput(preserve bool) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.preserve = preserve
	})
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{scope: format.CipherPerSegment}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// CipherScope returns the configured cipher scope.
func (d *Decoder) CipherScope() format.CipherScope {
	return d.scope
}

// PreservesInput reports whether the decoder leaves buffers untouched.
func (d *Decoder) PreservesInput() bool {
	return d.preserve
}

// layout binds a base shape to its extension shape.
type layout[B, X any] struct {
	kind      format.RecordKind
	baseSize  int
	extSize   int
	parseBase func([]byte) (B, error)
	parseExt  func([]byte) (X, error)
	gate      func(B) bool
	closed    func() Extension[X] // extension value when the gate is closed
}

var (
	sectorLayout = layout[section.Sector, section.XSector]{
		kind:      format.KindSector,
		baseSize:  section.SectorSize,
		extSize:   section.XSectorSize,
		parseBase: section.ParseSector,
		parseExt:  section.ParseXSector,
		gate:      section.Sector.HasExtension,
		closed:    absent[section.XSector],
	}
	wallLayout = layout[section.Wall, section.XWall]{
		kind:      format.KindWall,
		baseSize:  section.WallSize,
		extSize:   section.XWallSize,
		parseBase: section.ParseWall,
		parseExt:  section.ParseXWall,
		gate:      section.Wall.HasExtension,
		closed:    defaulted[section.XWall],
	}
	spriteLayout = layout[section.Sprite, section.XSprite]{
		kind:      format.KindSprite,
		baseSize:  section.SpriteSize,
		extSize:   section.XSpriteSize,
		parseBase: section.ParseSprite,
		parseExt:  section.ParseXSprite,
		gate:      section.Sprite.HasExtension,
		closed:    absent[section.XSprite],
	}
)

// DecodeSectors decodes count sector records starting at offset and returns
// them with the offset just past the last consumed byte.
func (d *Decoder) DecodeSectors(buf []byte, offset, count int, key byte) ([]Sector, int, error) {
	return decodeRun(d, sectorLayout, buf, offset, count, key, func(b section.Sector, x Extension[section.XSector]) Sector {
		return Sector{Base: b, Ext: x}
	})
}

// DecodeWalls decodes count wall records starting at offset.
func (d *Decoder) DecodeWalls(buf []byte, offset, count int, key byte) ([]Wall, int, error) {
	return decodeRun(d, wallLayout, buf, offset, count, key, func(b section.Wall, x Extension[section.XWall]) Wall {
		return Wall{Base: b, Ext: x}
	})
}

// DecodeSprites decodes count sprite records starting at offset.
func (d *Decoder) DecodeSprites(buf []byte, offset, count int, key byte) ([]Sprite, int, error) {
	return decodeRun(d, spriteLayout, buf, offset, count, key, func(b section.Sprite, x Extension[section.XSprite]) Sprite {
		return Sprite{Base: b, Ext: x}
	})
}

func decodeRun[B, X, R any](d *Decoder, l layout[B, X], buf []byte, offset, count int, key byte, build func(B, Extension[X]) R) ([]R, int, error) {
	if err := validateRun(l.kind, l.baseSize, buf, offset, count); err != nil {
		return nil, offset, err
	}

	// the pre-check above bounds count by the buffer, so this cannot over-allocate
	records := make([]R, 0, count)
	pos := offset
	decrypted := offset // end of the bytes this call has touched
	var scratch [maxSegmentSize]byte

	fail := func(i int, err error) ([]R, int, error) {
		rollback(d, l, buf, offset, decrypted, key)
		return nil, offset, fmt.Errorf("%s record %d at offset %d: %w", l.kind, i, pos, err)
	}

	for i := range count {
		seg, err := d.segment(buf, pos, l.baseSize, key, d.scope.DecryptsBase(), scratch[:])
		if err != nil {
			return fail(i, err)
		}
		decrypted = pos + l.baseSize

		base, err := l.parseBase(seg)
		if err != nil {
			return fail(i, err)
		}
		pos += l.baseSize

		ext := l.closed()
		if l.gate(base) {
			seg, err = d.segment(buf, pos, l.extSize, key, d.scope.DecryptsExtension(), scratch[:])
			if err != nil {
				return fail(i, err)
			}
			decrypted = pos + l.extSize

			x, err := l.parseExt(seg)
			if err != nil {
				return fail(i, err)
			}
			ext = fromStream(x)
			pos += l.extSize
		}

		records = append(records, build(base, ext))
	}

	return records, pos, nil
}

func validateRun(kind format.RecordKind, baseSize int, buf []byte, offset, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", errs.ErrInvalidArgument, count)
	}
	if offset < 0 || offset > len(buf) {
		return fmt.Errorf("%w: offset %d outside buffer of %d bytes", errs.ErrInvalidArgument, offset, len(buf))
	}
	if count > 0 && len(buf) == 0 {
		return fmt.Errorf("%w: empty buffer for %d records", errs.ErrInvalidArgument, count)
	}
	if count > (len(buf)-offset)/baseSize {
		return fmt.Errorf("%w: %d %s records need at least %d bytes at offset %d, have %d",
			errs.ErrTruncatedInput, count, kind, count*baseSize, offset, len(buf)-offset)
	}

	return nil
}

// segment returns the plaintext of buf[pos:pos+size].
func (d *Decoder) segment(buf []byte, pos, size int, key byte, decrypt bool, scratch []byte) ([]byte, error) {
	if size > len(buf)-pos {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncatedInput, size, len(buf)-pos)
	}

	seg := buf[pos : pos+size]
	if !decrypt {
		return seg, nil
	}

	if d.preserve {
		tmp := scratch[:size]
		copy(tmp, seg)
		crypt.Apply(tmp, key)

		return tmp, nil
	}

	crypt.Apply(seg, key)

	return seg, nil
}

// rollback re-encrypts the segments decrypted in place between from and to.
// Every segment in that range is whole: to is never inside a segment.
func rollback[B, X any](d *Decoder, l layout[B, X], buf []byte, from, to int, key byte) {
	if d.preserve || !d.scope.DecryptsBase() {
		return
	}

	for pos := from; pos+l.baseSize <= to; {
		seg := buf[pos : pos+l.baseSize]
		base, err := l.parseBase(seg)
		crypt.Apply(seg, key)
		pos += l.baseSize

		if err != nil || !l.gate(base) {
			continue
		}
		if pos+l.extSize > to {
			return
		}
		if d.scope.DecryptsExtension() {
			crypt.Apply(buf[pos:pos+l.extSize], key)
		}
		pos += l.extSize
	}
}
