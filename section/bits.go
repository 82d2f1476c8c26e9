package section

import (
	"github.com/arloliu/blmap/endian"
)

var le = endian.GetLittleEndianEngine()

// bitReader splits a packed word into sub-fields, least significant bit first.
type bitReader struct {
	word uint32
	pos  uint
}

func (r *bitReader) take(width uint) uint32 {
	v := (r.word >> r.pos) & (1<<width - 1)
	r.pos += width

	return v
}

func (r *bitReader) flag() bool {
	return r.take(1) != 0
}

func (r *bitReader) u8(width uint) uint8 {
	return uint8(r.take(width)) //nolint: gosec
}

func (r *bitReader) u16(width uint) uint16 {
	return uint16(r.take(width)) //nolint: gosec
}

// bitWriter is the mirror of bitReader. Values wider than their field are masked.
type bitWriter struct {
	word uint32
	pos  uint
}

func (w *bitWriter) put(v uint32, width uint) {
	w.word |= (v & (1<<width - 1)) << w.pos
	w.pos += width
}

func (w *bitWriter) flag(b bool) {
	if b {
		w.put(1, 1)
	} else {
		w.pos++
	}
}

// fieldReader walks a fixed-size record from front to back.
type fieldReader struct {
	data []byte
	off  int
}

func (r *fieldReader) u8() uint8 {
	v := r.data[r.off]
	r.off++

	return v
}

func (r *fieldReader) i8() int8 {
	return endian.Int8(r.u8())
}

func (r *fieldReader) u16() uint16 {
	v := le.Uint16(r.data[r.off : r.off+2])
	r.off += 2

	return v
}

func (r *fieldReader) i16() int16 {
	v := endian.Int16(le, r.data[r.off:r.off+2])
	r.off += 2

	return v
}

func (r *fieldReader) u32() uint32 {
	v := le.Uint32(r.data[r.off : r.off+4])
	r.off += 4

	return v
}

func (r *fieldReader) i32() int32 {
	v := endian.Int32(le, r.data[r.off:r.off+4])
	r.off += 4

	return v
}

func (r *fieldReader) raw(dst []byte) {
	r.off += copy(dst, r.data[r.off:r.off+len(dst)])
}

func (r *fieldReader) tags() [TagCount]int16 {
	var t [TagCount]int16
	for i := range t {
		t[i] = r.i16()
	}

	return t
}

func (r *fieldReader) bits8() bitReader {
	return bitReader{word: uint32(r.u8())}
}

func (r *fieldReader) bits16() bitReader {
	return bitReader{word: uint32(r.u16())}
}

func (r *fieldReader) bits32() bitReader {
	return bitReader{word: r.u32()}
}

// fieldWriter is the mirror of fieldReader.
type fieldWriter struct {
	data []byte
	off  int
}

func (w *fieldWriter) u8(v uint8) {
	w.data[w.off] = v
	w.off++
}

func (w *fieldWriter) i8(v int8) {
	w.u8(uint8(v)) //nolint: gosec
}

func (w *fieldWriter) u16(v uint16) {
	le.PutUint16(w.data[w.off:w.off+2], v)
	w.off += 2
}

func (w *fieldWriter) i16(v int16) {
	endian.PutInt16(le, w.data[w.off:w.off+2], v)
	w.off += 2
}

func (w *fieldWriter) u32(v uint32) {
	le.PutUint32(w.data[w.off:w.off+4], v)
	w.off += 4
}

func (w *fieldWriter) i32(v int32) {
	endian.PutInt32(le, w.data[w.off:w.off+4], v)
	w.off += 4
}

func (w *fieldWriter) raw(src []byte) {
	w.off += copy(w.data[w.off:w.off+len(src)], src)
}

func (w *fieldWriter) tags(t [TagCount]int16) {
	for _, v := range t {
		w.i16(v)
	}
}

func (w *fieldWriter) bits8(b bitWriter) {
	w.u8(uint8(b.word)) //nolint: gosec
}

func (w *fieldWriter) bits16(b bitWriter) {
	w.u16(uint16(b.word)) //nolint: gosec
}

func (w *fieldWriter) bits32(b bitWriter) {
	w.u32(b.word)
}

// HasExtension reports whether a base record with these tags is followed by an extension record.
func HasExtension(tags [TagCount]int16) bool {
	return tags[ExtensionTagIndex] > 0
}
