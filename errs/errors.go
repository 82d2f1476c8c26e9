// Package errs defines the sentinel errors returned by blmap packages.
//
// Errors are usually wrapped with positional context (record kind, index and
// byte offset) before they reach the caller, so compare with errors.Is:
//
//	records, next, err := dec.DecodeWalls(buf, offset, count, key)
//	if errors.Is(err, errs.ErrTruncatedInput) {
//	    // the buffer ended inside a record
//	}
package errs

import "errors"

// Decode engine errors.
var (
	// ErrTruncatedInput is returned when a fixed-size read would extend past the end of the buffer.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrInvalidArgument is returned for negative counts or offsets, or an empty buffer with a non-zero count.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidKey is returned, together with ErrInvalidArgument, when a cipher key does not fit in a single byte.
	ErrInvalidKey = errors.New("invalid cipher key")
	// ErrInvalidRecordKind is returned for a record kind other than sector, wall or sprite.
	ErrInvalidRecordKind = errors.New("invalid record kind")
	// ErrInvalidCipherScope is returned for an unknown cipher scope.
	ErrInvalidCipherScope = errors.New("invalid cipher scope")
)

// Map container errors.
var (
	// ErrInvalidMagic is returned when a map file does not start with "BLM\x1a".
	ErrInvalidMagic = errors.New("invalid map magic")
	// ErrUnsupportedVersion is returned for map versions other than 6.3 and 7.0.
	ErrUnsupportedVersion = errors.New("unsupported map version")
	// ErrChecksumMismatch is returned when the trailing CRC32 does not match the file content.
	ErrChecksumMismatch = errors.New("map checksum mismatch")
	// ErrExtensionSizeMismatch is returned when the header advertises extension sizes this decoder does not know.
	ErrExtensionSizeMismatch = errors.New("extension size mismatch")
	// ErrTrailingData is returned when bytes remain after the trailing checksum.
	ErrTrailingData = errors.New("trailing data after map")
	// ErrInvalidSkyBits is returned when the sky tile exponent is negative or unreasonably large.
	ErrInvalidSkyBits = errors.New("invalid sky bits")
)

// Compression errors.
var (
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression")
	// ErrDecompressedTooLarge is returned when a compressed input expands beyond MaxDecompressedSize.
	ErrDecompressedTooLarge = errors.New("decompressed data too large")
)
