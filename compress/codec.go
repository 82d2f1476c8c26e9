package compress

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/format"
)

// MaxDecompressedSize caps the output of every decompressor.
//
// Real maps are a few hundred kilobytes; anything near this limit is corrupt
// or hostile input.
const MaxDecompressedSize = 64 * 1024 * 1024 // 64MiB

// Compressor compresses a whole map file.
type Compressor interface {
	// Compress returns a newly allocated compressed copy of data. data is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor expands a whole compressed map file.
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original bytes. It fails on corrupt input and on
	// output larger than MaxDecompressedSize.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes how a map file was stored.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of the map after decompression
	OriginalSize int64

	// CompressedSize is the size of the file on disk
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Returns 0.0 if the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

var suffixes = map[string]format.CompressionType{
	".zst":  format.CompressionZstd,
	".zstd": format.CompressionZstd,
	".s2":   format.CompressionS2,
	".lz4":  format.CompressionLZ4,
}

// TypeForPath picks a compression type from the file name suffix.
//
// "E1M1.MAP.zst" is Zstd; "E1M1.MAP" is CompressionNone. Matching is case-insensitive.
func TypeForPath(path string) format.CompressionType {
	if ct, ok := suffixes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}

	return format.CompressionNone
}

// Decompress expands data with the codec for compressionType.
func Decompress(compressionType format.CompressionType, data []byte) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", compressionType, err)
	}

	return out, nil
}
