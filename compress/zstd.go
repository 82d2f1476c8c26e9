package compress

// ZstdCompressor handles Zstandard frames, as written by the zstd command line tool.
//
// Builds with cgo use github.com/valyala/gozstd; other builds use the pure Go
// github.com/klauspost/compress/zstd with pooled encoders and decoders.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
