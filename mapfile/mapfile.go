package mapfile

import (
	"fmt"
	"hash/crc32"
	"os"

	"github.com/arloliu/blmap/compress"
	"github.com/arloliu/blmap/crypt"
	"github.com/arloliu/blmap/endian"
	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/format"
	"github.com/arloliu/blmap/internal/hash"
	"github.com/arloliu/blmap/internal/pool"
	"github.com/arloliu/blmap/record"
)

// version 6.3 maps always store this many sky offsets
const legacySkyOffsets = 16

// Map is a fully decoded map file.
type Map struct {
	Header     Header
	SkyOffsets []int16
	Sectors    []record.Sector
	Walls      []record.Wall
	Sprites    []record.Sprite

	// CRC is the stored CRC32 (IEEE) of every byte before it.
	CRC uint32
	// ChecksumVerified is false when verification was disabled with WithChecksum(false).
	ChecksumVerified bool

	// Fingerprint is the xxHash64 of the uncompressed file.
	Fingerprint uint64
	// Stats describes how the file was stored. Parse reports CompressionNone.
	Stats compress.CompressionStats
}

// Parse decodes a whole uncompressed map file. data is not modified.
func Parse(data []byte, opts ...Option) (*Map, error) {
	p, err := newParser(opts...)
	if err != nil {
		return nil, err
	}

	return p.parse(data)
}

// ReadFile reads and decodes the map at path.
//
// Files ending in .zst, .zstd, .s2 or .lz4 are decompressed first.
func ReadFile(path string, opts ...Option) (*Map, error) {
	p, err := newParser(opts...)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bb := pool.GetMapBuffer()
	defer pool.PutMapBuffer(bb)

	if _, err := bb.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	raw := bb.Bytes()
	ct := compress.TypeForPath(path)
	data := raw
	if ct != format.CompressionNone {
		data, err = compress.Decompress(ct, raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	p.logger.Debug("map file loaded", "path", path, "compression", ct, "stored", len(raw), "size", len(data))

	m, err := p.parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m.Stats = compress.CompressionStats{
		Algorithm:      ct,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(raw)),
	}

	return m, nil
}

// parse returns a Map the caller owns; cached maps are shallow-copied.
func (p *parser) parse(data []byte) (*Map, error) {
	fp := hash.Fingerprint(data)
	key := p.cacheKey(fp)

	if p.cache != nil {
		if cached, ok := p.cache.Get(key); ok {
			p.logger.Debug("map cache hit", "fingerprint", hash.Hex(fp))
			if p.checksum && !cached.ChecksumVerified {
				if err := verifyChecksum(data, cached.CRC); err != nil {
					return nil, err
				}
			}
			m := *cached
			m.ChecksumVerified = m.ChecksumVerified || p.checksum

			return &m, nil
		}
	}

	bb := pool.GetMapBuffer()
	defer pool.PutMapBuffer(bb)
	_, _ = bb.Write(data)

	m, end, err := p.decode(bb.Bytes())
	if err != nil {
		return nil, err
	}

	m.Fingerprint = fp
	m.Stats = compress.CompressionStats{
		Algorithm:      format.CompressionNone,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(data)),
	}

	if p.checksum {
		if err := verifyChecksum(data[:end+ChecksumSize], m.CRC); err != nil {
			return nil, err
		}
		m.ChecksumVerified = true
	} else {
		p.logger.Warn("map checksum not verified", "fingerprint", hash.Hex(fp))
	}

	if p.cache != nil {
		p.cache.Add(key, m)
		p.logger.Debug("map cached",
			"fingerprint", hash.Hex(fp),
			"entries", p.cache.Len(),
			"capacity", p.cache.Cap(),
			"evictions", p.cache.Evictions())
		cp := *m

		return &cp, nil
	}

	return m, nil
}

// cacheKey separates entries decoded under an explicit cipher scope.
func (p *parser) cacheKey(fp uint64) uint64 {
	if p.scope == 0 {
		return fp
	}

	var b [9]byte
	le.PutUint64(b[:8], fp)
	b[8] = byte(p.scope)

	d := hash.NewDigest()
	_, _ = d.Write(b[:])

	return d.Sum64()
}

// verifyChecksum checks crc against everything in data except its last ChecksumSize bytes.
func verifyChecksum(data []byte, crc uint32) error {
	got := crc32.ChecksumIEEE(data[:len(data)-ChecksumSize])
	if got != crc {
		return fmt.Errorf("%w: stored %08x, computed %08x", errs.ErrChecksumMismatch, crc, got)
	}

	return nil
}

type cursor struct {
	buf []byte
	off int
}

// block returns the next size bytes, decrypting them in place when encrypted is set.
func (c *cursor) block(size int, key byte, encrypted bool) ([]byte, error) {
	if encrypted {
		if err := crypt.ApplyAt(c.buf, c.off, size, key); err != nil {
			return nil, err
		}
	} else if size > len(c.buf)-c.off {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrTruncatedInput, size, c.off, len(c.buf)-c.off)
	}

	b := c.buf[c.off : c.off+size]
	c.off += size

	return b, nil
}

// decode parses buf in place and returns the offset of the trailing checksum.
func (p *parser) decode(buf []byte) (*Map, int, error) {
	v, err := parseVersion(buf)
	if err != nil {
		return nil, 0, err
	}

	m := &Map{Header: Header{Version: v}}
	h := &m.Header
	c := cursor{buf: buf, off: VersionHeaderSize}
	enc := v.Encrypted()

	blk, err := c.block(StartHeaderSize, StartHeaderKey, enc)
	if err != nil {
		return nil, 0, fmt.Errorf("start header: %w", err)
	}
	if err := h.parseStart(blk); err != nil {
		return nil, 0, err
	}

	blk, err = c.block(SkyHeaderSize, SkyHeaderKey, enc)
	if err != nil {
		return nil, 0, fmt.Errorf("sky header: %w", err)
	}
	if err := h.parseSky(blk); err != nil {
		return nil, 0, err
	}

	blk, err = c.block(CountHeaderSize, CountHeaderKey, enc)
	if err != nil {
		return nil, 0, fmt.Errorf("count header: %w", err)
	}
	if err := h.parseCounts(blk); err != nil {
		return nil, 0, err
	}

	if enc {
		blk, err = c.block(ExtraHeaderSize, ExtraHeaderKey(h.WallCount), true)
		if err != nil {
			return nil, 0, fmt.Errorf("extra header: %w", err)
		}
		if h.Extra, err = parseExtra(blk); err != nil {
			return nil, 0, err
		}
		if err := h.Extra.Validate(); err != nil {
			return nil, 0, err
		}
	}

	p.logger.Debug("map header",
		"version", v.String(),
		"revisions", h.Revisions,
		"sectors", h.SectorCount,
		"walls", h.WallCount,
		"sprites", h.SpriteCount,
		"offset", c.off)

	if m.SkyOffsets, err = readSkyOffsets(&c, h); err != nil {
		return nil, 0, err
	}

	dec, err := record.NewDecoder(record.WithCipherScope(p.scopeFor(v)))
	if err != nil {
		return nil, 0, err
	}

	p.logger.Debug("sectors", "offset", c.off, "count", h.SectorCount, "scope", dec.CipherScope().String())
	if m.Sectors, c.off, err = dec.DecodeSectors(buf, c.off, int(h.SectorCount), SectorKey(h.Revisions)); err != nil {
		return nil, 0, fmt.Errorf("sectors: %w", err)
	}

	p.logger.Debug("walls", "offset", c.off, "count", h.WallCount)
	if m.Walls, c.off, err = dec.DecodeWalls(buf, c.off, int(h.WallCount), WallKey(h.Revisions)); err != nil {
		return nil, 0, fmt.Errorf("walls: %w", err)
	}

	p.logger.Debug("sprites", "offset", c.off, "count", h.SpriteCount)
	if m.Sprites, c.off, err = dec.DecodeSprites(buf, c.off, int(h.SpriteCount), SpriteKey(h.Revisions)); err != nil {
		return nil, 0, fmt.Errorf("sprites: %w", err)
	}

	end := c.off
	if len(buf)-end < ChecksumSize {
		return nil, 0, fmt.Errorf("checksum: %w: need %d bytes at offset %d, have %d",
			errs.ErrTruncatedInput, ChecksumSize, end, len(buf)-end)
	}
	if extra := len(buf) - end - ChecksumSize; extra > 0 {
		return nil, 0, fmt.Errorf("%w: %d bytes after checksum", errs.ErrTrailingData, extra)
	}
	m.CRC = le.Uint32(buf[end:])

	return m, end, nil
}

func (p *parser) scopeFor(v Version) format.CipherScope {
	switch {
	case p.scope != 0:
		return p.scope
	case v.Encrypted():
		return format.CipherBaseOnly
	default:
		return format.CipherNone
	}
}

func readSkyOffsets(c *cursor, h *Header) ([]int16, error) {
	n := legacySkyOffsets
	if h.Version.Encrypted() {
		if h.SkyBits < 0 || h.SkyBits > maxSkyBits {
			return nil, fmt.Errorf("%w: %d", errs.ErrInvalidSkyBits, h.SkyBits)
		}
		n = 1 << h.SkyBits
	}

	blk, err := c.block(n*2, SkyKey(n), h.Version.Encrypted())
	if err != nil {
		return nil, fmt.Errorf("sky offsets: %w", err)
	}

	offsets := make([]int16, n)
	for i := range offsets {
		offsets[i] = endian.Int16(le, blk[i*2:])
	}

	return offsets, nil
}
