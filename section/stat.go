package section

// SectorStat is the packed 16-bit flag word used for sector ceilings and floors.
type SectorStat struct {
	Parallax bool  // bit 0
	Groudraw bool  // bit 1, sloped surface
	SwapXY   bool  // bit 2
	Expand   bool  // bit 3, double smooshiness
	XFlip    bool  // bit 4
	YFlip    bool  // bit 5
	Align    bool  // bit 6, align texture to first wall
	Masking  uint8 // bits 7-8
	Reserved uint8 // bits 9-15
}

// ParseSectorStat decodes a sector stat word.
func ParseSectorStat(word uint16) SectorStat {
	r := bitReader{word: uint32(word)}

	return SectorStat{
		Parallax: r.flag(),
		Groudraw: r.flag(),
		SwapXY:   r.flag(),
		Expand:   r.flag(),
		XFlip:    r.flag(),
		YFlip:    r.flag(),
		Align:    r.flag(),
		Masking:  r.u8(2),
		Reserved: r.u8(7),
	}
}

// Uint16 packs the stat back into its wire word.
func (s SectorStat) Uint16() uint16 {
	var w bitWriter
	w.flag(s.Parallax)
	w.flag(s.Groudraw)
	w.flag(s.SwapXY)
	w.flag(s.Expand)
	w.flag(s.XFlip)
	w.flag(s.YFlip)
	w.flag(s.Align)
	w.put(uint32(s.Masking), 2)
	w.put(uint32(s.Reserved), 7)

	return uint16(w.word) //nolint: gosec
}

// WallStat is the packed 16-bit flag word of a wall.
type WallStat struct {
	Blocking       bool
	BottomSwap     bool
	Align          bool
	XFlip          bool
	Masking        bool
	OneWay         bool
	Blocking2      bool // hitscan blocking
	Translucent    bool
	YFlip          bool
	TranslucentRev bool
	Reserved       uint8 // bits 10-13
	PolyBlue       bool
	PolyGreen      bool
}

// ParseWallStat decodes a wall stat word.
func ParseWallStat(word uint16) WallStat {
	r := bitReader{word: uint32(word)}

	return WallStat{
		Blocking:       r.flag(),
		BottomSwap:     r.flag(),
		Align:          r.flag(),
		XFlip:          r.flag(),
		Masking:        r.flag(),
		OneWay:         r.flag(),
		Blocking2:      r.flag(),
		Translucent:    r.flag(),
		YFlip:          r.flag(),
		TranslucentRev: r.flag(),
		Reserved:       r.u8(4),
		PolyBlue:       r.flag(),
		PolyGreen:      r.flag(),
	}
}

// Uint16 packs the stat back into its wire word.
func (s WallStat) Uint16() uint16 {
	var w bitWriter
	w.flag(s.Blocking)
	w.flag(s.BottomSwap)
	w.flag(s.Align)
	w.flag(s.XFlip)
	w.flag(s.Masking)
	w.flag(s.OneWay)
	w.flag(s.Blocking2)
	w.flag(s.Translucent)
	w.flag(s.YFlip)
	w.flag(s.TranslucentRev)
	w.put(uint32(s.Reserved), 4)
	w.flag(s.PolyBlue)
	w.flag(s.PolyGreen)

	return uint16(w.word) //nolint: gosec
}

// SpriteStat is the packed 16-bit flag word of a sprite.
type SpriteStat struct {
	Blocking       bool
	Translucent    bool
	XFlip          bool
	YFlip          bool
	Facing         uint8 // 0 face, 1 wall, 2 floor
	OneSided       bool
	Centring       bool
	Blocking2      bool
	TranslucentRev bool
	Reserved       uint8 // bits 10-12
	PolyBlue       bool
	PolyGreen      bool
	Invisible      bool
}

// ParseSpriteStat decodes a sprite stat word.
func ParseSpriteStat(word uint16) SpriteStat {
	r := bitReader{word: uint32(word)}

	return SpriteStat{
		Blocking:       r.flag(),
		Translucent:    r.flag(),
		XFlip:          r.flag(),
		YFlip:          r.flag(),
		Facing:         r.u8(2),
		OneSided:       r.flag(),
		Centring:       r.flag(),
		Blocking2:      r.flag(),
		TranslucentRev: r.flag(),
		Reserved:       r.u8(3),
		PolyBlue:       r.flag(),
		PolyGreen:      r.flag(),
		Invisible:      r.flag(),
	}
}

// Uint16 packs the stat back into its wire word.
func (s SpriteStat) Uint16() uint16 {
	var w bitWriter
	w.flag(s.Blocking)
	w.flag(s.Translucent)
	w.flag(s.XFlip)
	w.flag(s.YFlip)
	w.put(uint32(s.Facing), 2)
	w.flag(s.OneSided)
	w.flag(s.Centring)
	w.flag(s.Blocking2)
	w.flag(s.TranslucentRev)
	w.put(uint32(s.Reserved), 3)
	w.flag(s.PolyBlue)
	w.flag(s.PolyGreen)
	w.flag(s.Invisible)

	return uint16(w.word) //nolint: gosec
}
