package mapfile

import (
	"github.com/arloliu/blmap/section"
)

// Cipher keys for the version 7 header blocks. Each block key continues the
// byte count from the start block.
const (
	StartHeaderKey byte = 0x4D
	SkyHeaderKey   byte = StartHeaderKey + StartHeaderSize
	CountHeaderKey byte = StartHeaderKey + StartHeaderSize + SkyHeaderSize
)

const maxSkyBits = 10

// ExtraHeaderKey derives the extra header key from the wall count.
func ExtraHeaderKey(wallCount int16) byte {
	return byte(wallCount) //nolint: gosec
}

// SectorKey derives the sector record key from the revision counter.
func SectorKey(revisions int32) byte {
	return byte(revisions * section.SectorSize) //nolint: gosec
}

// WallKey derives the wall record key from the revision counter.
func WallKey(revisions int32) byte {
	return byte((revisions * section.SectorSize) | 0x4D) //nolint: gosec
}

// SpriteKey derives the sprite record key from the revision counter.
func SpriteKey(revisions int32) byte {
	return byte((revisions * section.SpriteSize) | 0x4D) //nolint: gosec
}

// SkyKey derives the sky offset key from the number of offsets.
func SkyKey(n int) byte {
	return byte(n * 2) //nolint: gosec
}
