package mapfile

import (
	"bytes"
	"hash/crc32"

	"github.com/arloliu/blmap/crypt"
	"github.com/arloliu/blmap/endian"
	"github.com/arloliu/blmap/record"
	"github.com/arloliu/blmap/section"
)

const testCopyright = "Copyright 1997 Monolith Productions.  All Rights Reserved"

// fixture describes a synthetic map and serializes it the way the game stores it.
type fixture struct {
	version    Version
	revisions  int32
	skyBits    int16
	xsizes     [3]uint32 // xsprite, xwall, xsector
	encryptExt bool      // also encrypt extension blocks, as CipherPerSegment expects

	sectors []record.Sector
	walls   []record.Wall
	sprites []record.Sprite
}

func tags(ext int16) [section.TagCount]int16 {
	return [section.TagCount]int16{0, 0, ext}
}

func newFixture(v Version) *fixture {
	return &fixture{
		version:   v,
		revisions: 7,
		skyBits:   2,
		xsizes:    [3]uint32{section.XSpriteSize, section.XWallSize, section.XSectorSize},
		sectors: []record.Sector{
			{
				Base: section.Sector{WallCount: 3, CeilingZ: -8192, FloorZ: 8192, CeilingPicnum: 10, FloorPicnum: 11, Tags: tags(1)},
				Ext:  record.Extension[section.XSector]{State: record.ExtFromStream, Value: section.XSector{TxID: 100, RxID: 101, State: true}},
			},
			{
				Base: section.Sector{FirstWall: 3, WallCount: 3, FloorZ: 4096, FloorShade: -8},
				Ext:  record.Extension[section.XSector]{State: record.ExtAbsent},
			},
		},
		walls: []record.Wall{
			{
				Base: section.Wall{X: -1024, Y: -1024, Point2: 1, NextWall: -1, NextSector: -1, Picnum: 4, Tags: tags(1)},
				Ext:  record.Extension[section.XWall]{State: record.ExtFromStream, Value: section.XWall{TxID: 5, RxID: 7, Locked: true}},
			},
			{Base: section.Wall{X: 1024, Y: -1024, Point2: 2, NextWall: 3, NextSector: 1}, Ext: record.Extension[section.XWall]{State: record.ExtDefault}},
			{Base: section.Wall{X: 0, Y: 1024, Point2: 0, NextWall: -1, NextSector: -1}, Ext: record.Extension[section.XWall]{State: record.ExtDefault}},
			{Base: section.Wall{X: -1024, Y: -1024, Point2: 4, NextWall: 1, NextSector: 0}, Ext: record.Extension[section.XWall]{State: record.ExtDefault}},
			{Base: section.Wall{X: 1024, Y: -1024, Point2: 5, NextWall: -1, NextSector: -1}, Ext: record.Extension[section.XWall]{State: record.ExtDefault}},
			{Base: section.Wall{X: 0, Y: -3072, Point2: 3, NextWall: -1, NextSector: -1}, Ext: record.Extension[section.XWall]{State: record.ExtDefault}},
		},
		sprites: []record.Sprite{
			{
				Base: section.Sprite{X: 100, Y: 200, Picnum: 2050, Theta: 512, Tags: tags(1)},
				Ext:  record.Extension[section.XSprite]{State: record.ExtFromStream, Value: section.XSprite{TxID: 9, RxID: 10, State: true}},
			},
			{
				Base: section.Sprite{X: -100, Y: -2000, Picnum: 1, Sector: 1},
				Ext:  record.Extension[section.XSprite]{State: record.ExtAbsent},
			},
		},
	}
}

func (f *fixture) skyCount() int {
	if f.version.Encrypted() {
		return 1 << f.skyBits
	}

	return legacySkyOffsets
}

func (f *fixture) build() []byte {
	enc := f.version.Encrypted()

	var out []byte
	put := func(plain []byte, key byte, encrypt bool) {
		b := bytes.Clone(plain)
		if encrypt {
			crypt.Apply(b, key)
		}
		out = append(out, b...)
	}

	out = append(out, Magic[:]...)
	out = append(out, f.version.Minor, f.version.Major)

	start := make([]byte, StartHeaderSize)
	endian.PutInt32(le, start[0:4], 512)
	endian.PutInt32(le, start[4:8], -512)
	endian.PutInt32(le, start[8:12], 8192)
	endian.PutInt16(le, start[12:14], 1536)
	endian.PutInt16(le, start[14:16], 0)
	put(start, StartHeaderKey, enc)

	sky := make([]byte, SkyHeaderSize)
	endian.PutInt16(le, sky[0:2], f.skyBits)
	endian.PutInt32(le, sky[2:6], 0)
	copy(sky[6:10], "Matt")
	sky[10] = 2
	put(sky, SkyHeaderKey, enc)

	counts := make([]byte, CountHeaderSize)
	endian.PutInt32(le, counts[0:4], f.revisions)
	endian.PutInt16(le, counts[4:6], int16(len(f.sectors)))
	endian.PutInt16(le, counts[6:8], int16(len(f.walls)))
	endian.PutInt16(le, counts[8:10], int16(len(f.sprites)))
	put(counts, CountHeaderKey, enc)

	if enc {
		extra := make([]byte, ExtraHeaderSize)
		copy(extra[0:57], testCopyright)
		le.PutUint32(extra[64:68], f.xsizes[0])
		le.PutUint32(extra[68:72], f.xsizes[1])
		le.PutUint32(extra[72:76], f.xsizes[2])
		put(extra, ExtraHeaderKey(int16(len(f.walls))), true)
	}

	n := f.skyCount()
	offsets := make([]byte, n*2)
	for i := range n {
		endian.PutInt16(le, offsets[i*2:], int16(i*128))
	}
	put(offsets, SkyKey(n), enc)

	extEnc := enc && f.encryptExt
	for _, s := range f.sectors {
		put(s.Base.Bytes(), SectorKey(f.revisions), enc)
		if s.Ext.InStream() {
			put(s.Ext.Value.Bytes(), SectorKey(f.revisions), extEnc)
		}
	}
	for _, w := range f.walls {
		put(w.Base.Bytes(), WallKey(f.revisions), enc)
		if w.Ext.InStream() {
			put(w.Ext.Value.Bytes(), WallKey(f.revisions), extEnc)
		}
	}
	for _, s := range f.sprites {
		put(s.Base.Bytes(), SpriteKey(f.revisions), enc)
		if s.Ext.InStream() {
			put(s.Ext.Value.Bytes(), SpriteKey(f.revisions), extEnc)
		}
	}

	return le.AppendUint32(out, crc32.ChecksumIEEE(out))
}
