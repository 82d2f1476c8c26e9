// Package blmap decodes Blood level files (Build engine "MAP" format).
//
// A map stores three record families: sectors, walls and sprites. Every record
// is a fixed-size base layout, optionally followed by a Blood extension block
// (XSector, XWall, XSprite) when the third tag of the base record is positive.
// Version 7 maps obfuscate base records with a positional XOR cipher that
// restarts at every record.
//
// # Core Features
//
//   - Typed decoding of all six record layouts, including bit-packed fields
//   - All-or-nothing record runs: a failed run leaves the input buffer as it was
//   - Whole-file reading with header key derivation and CRC32 verification
//   - Transparent zstd, s2 and lz4 decompression by file suffix
//   - Optional TinyLFU cache of decoded maps keyed by xxHash64 fingerprint
//
// # Basic Usage
//
// Decoding a run of records from a buffer you already located:
//
//	batch, err := blmap.DecodeMany(buf, offset, wallCount, wallKey, format.KindWall)
//	if err != nil {
//	    return err
//	}
//	for _, w := range batch.Walls {
//	    fmt.Println(w.Base.X, w.Base.Y, w.Ext.State)
//	}
//	offset = batch.End
//
// Reading a whole map:
//
//	m, err := blmap.ReadMap("E1M1.MAP.zst")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m.Header.Version, len(m.Sectors), len(m.Walls), len(m.Sprites))
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained
// control use the record package (decode engine) and the mapfile package
// (container format) directly.
package blmap

import (
	"github.com/arloliu/blmap/format"
	"github.com/arloliu/blmap/internal/hash"
	"github.com/arloliu/blmap/mapfile"
	"github.com/arloliu/blmap/record"
)

// NewDecoder creates a record decoder with custom options.
//
// Available options:
//   - record.WithCipherScope(format.CipherPerSegment|CipherBaseOnly|CipherNone)
//   - record.WithPreserveInput(true|false)
//
// Example:
//
//	dec, err := blmap.NewDecoder(record.WithCipherScope(format.CipherBaseOnly))
//	sectors, next, err := dec.DecodeSectors(buf, offset, count, key)
func NewDecoder(opts ...record.DecoderOption) (*record.Decoder, error) {
	return record.NewDecoder(opts...)
}

// DecodeMany decodes count records of kind from buf starting at offset.
//
// Records are decrypted in place with key, which must be in 0..255. Each base
// record and each extension record restarts the cipher counter. On success the
// returned Batch holds the records and End, the offset just past the last
// consumed byte. On failure buf is left unchanged and End equals offset.
//
// Parameters:
//   - buf: The buffer holding the encrypted records
//   - offset: Position of the first record
//   - count: Number of records to decode
//   - key: Cipher key, 0..255
//   - kind: format.KindSector, format.KindWall or format.KindSprite
func DecodeMany(buf []byte, offset, count, key int, kind format.RecordKind) (record.Batch, error) {
	return record.DecodeMany(buf, offset, count, key, kind)
}

// ParseMap decodes a whole uncompressed map file held in memory. data is not modified.
//
// Available options:
//   - mapfile.WithChecksum(bool)
//   - mapfile.WithCipherScope(format.CipherScope)
//   - mapfile.WithLogger(*slog.Logger)
//   - mapfile.WithCache(*mapfile.MapCache)
func ParseMap(data []byte, opts ...mapfile.Option) (*mapfile.Map, error) {
	return mapfile.Parse(data, opts...)
}

// ReadMap reads and decodes the map file at path, decompressing .zst, .s2 and
// .lz4 files first. It accepts the same options as ParseMap.
func ReadMap(path string, opts ...mapfile.Option) (*mapfile.Map, error) {
	return mapfile.ReadFile(path, opts...)
}

// Fingerprint returns the xxHash64 content fingerprint used to identify map files.
func Fingerprint(data []byte) uint64 {
	return hash.Fingerprint(data)
}
