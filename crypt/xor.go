// Package crypt implements the positional XOR obfuscation applied to map records.
//
// Every segment (a base record, or an extension record when it is encrypted)
// is obfuscated on its own: byte i of the segment is XORed with key+i, where i
// counts from zero at the first byte of that segment. The counter never runs
// across segment boundaries. The transform is its own inverse, so the same
// calls encrypt and decrypt.
package crypt

import (
	"fmt"

	"github.com/arloliu/blmap/errs"
)

// Apply XORs data in place with the positional key stream starting at index 0.
func Apply(data []byte, key byte) {
	for i := range data {
		data[i] ^= key + byte(i) //nolint: gosec
	}
}

// ApplyAt applies the cipher to buf[start:start+length] with a local index that
// starts at zero for buf[start].
//
// Nothing is modified when the range is invalid.
func ApplyAt(buf []byte, start, length int, key byte) error {
	if start < 0 || length < 0 {
		return fmt.Errorf("%w: start=%d length=%d", errs.ErrInvalidArgument, start, length)
	}
	if start > len(buf) || length > len(buf)-start {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrTruncatedInput, length, start, len(buf))
	}

	Apply(buf[start:start+length], key)

	return nil
}

// KeyFromInt converts an integer key into a cipher key byte.
//
// Map headers derive keys from wider integers; callers must mask them first.
func KeyFromInt(k int) (byte, error) {
	if k < 0 || k > 0xFF {
		return 0, fmt.Errorf("%w: %w %d", errs.ErrInvalidArgument, errs.ErrInvalidKey, k)
	}

	return byte(k), nil
}
