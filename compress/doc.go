// Package compress provides the codecs used to read compressed map files.
//
// Map collections are often shipped compressed. mapfile.ReadFile picks a
// codec from the file suffix and expands the file before parsing it:
//
//	Suffix        | Type                    | Format
//	--------------|-------------------------|------------------------------
//	.zst, .zstd   | format.CompressionZstd  | Zstandard frames
//	.s2           | format.CompressionS2    | S2 / Snappy framed stream
//	.lz4          | format.CompressionLZ4   | LZ4 frame
//	anything else | format.CompressionNone  | raw map bytes
//
// # Usage
//
//	ct := compress.TypeForPath("E1M1.MAP.zst")
//	raw, err := compress.Decompress(ct, data)
//	if err != nil {
//	    return err
//	}
//
// Every decompressor refuses to produce more than MaxDecompressedSize bytes
// and reports errs.ErrDecompressedTooLarge instead.
//
// # Zstandard Backends
//
// With cgo enabled the Zstd codec is backed by github.com/valyala/gozstd.
// Without cgo it uses github.com/klauspost/compress/zstd with pooled
// encoders and decoders. Both read and write standard frames, so files are
// interchangeable between builds.
//
// # Thread Safety
//
// All codecs are stateless values and are safe for concurrent use.
package compress
