// Package endian provides byte order utilities for the map record layouts.
//
// Every multi-byte integer in a Build/Blood map is little-endian, but several
// fields are signed (coordinates, picnums, shades, tags). The standard
// binary.ByteOrder only deals in unsigned values, so this package adds the
// sign-preserving helpers the layout catalog needs on top of a combined
// ByteOrder/AppendByteOrder engine.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	x := endian.Int32(engine, data[0:4])
//	endian.PutInt16(engine, out[4:6], -1)
//
// # Thread Safety
//
// All functions in this package are stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by the map format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
//
// The map format never uses it; it exists so tests can prove that layouts do
// not silently depend on host byte order.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Int8 reinterprets a single byte as a two's complement signed value.
func Int8(b byte) int8 {
	return int8(b) //nolint: gosec
}

// Int16 reads a signed 16-bit value from the first two bytes of data.
func Int16(engine EndianEngine, data []byte) int16 {
	return int16(engine.Uint16(data)) //nolint: gosec
}

// Int32 reads a signed 32-bit value from the first four bytes of data.
func Int32(engine EndianEngine, data []byte) int32 {
	return int32(engine.Uint32(data)) //nolint: gosec
}

// PutInt16 writes a signed 16-bit value into the first two bytes of data.
func PutInt16(engine EndianEngine, data []byte, v int16) {
	engine.PutUint16(data, uint16(v)) //nolint: gosec
}

// PutInt32 writes a signed 32-bit value into the first four bytes of data.
func PutInt32(engine EndianEngine, data []byte, v int32) {
	engine.PutUint32(data, uint32(v)) //nolint: gosec
}
