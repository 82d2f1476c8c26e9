package section

import (
	"fmt"

	"github.com/arloliu/blmap/errs"
)

// XSector is the 60-byte sector extension carrying trigger, lighting, motion
// and environment settings.
//
// Fields are grouped by the packed word they live in; each group is decoded
// least significant bit first in the order listed.
type XSector struct {
	Data1 uint8

	// u8
	Data2    uint8 // 6 bits
	State    bool
	Unknown2 bool

	Unknown3 [2]uint8
	Data     uint16

	// u16
	TxID    uint16 // 10 bits
	OnWave  uint8  // 3 bits
	OffWave uint8  // 3 bits

	// u32
	RxID        uint16 // 10 bits
	Cmd         uint8
	SendAtOn    bool
	SendAtOff   bool
	OnBusyTime  uint8
	Compressed2 uint8 // 4 bits

	OnWaitTime uint8

	// u32
	Unknown4       uint8 // 5 bits
	Interruptable  bool
	LightAmplitude uint8
	LightFrequency uint8
	OnWaitSet      bool
	OffWaitSet     bool
	LightPhase     uint8

	// u8
	LightWave    uint8 // 4 bits
	ShadeAlways  bool
	LightFloor   bool
	LightCeiling bool
	LightWalls   bool

	Unknown5 uint8

	// u8
	PanAlways  bool
	PanFloor   bool
	PanCeiling bool
	Drag       bool
	Underwater bool
	Depth      uint8 // 3 bits

	// u32
	Speed           uint8
	Angle           uint16 // 11 bits
	Unknown6        bool
	Decoupled       bool
	OneShot         bool
	Unknown7        bool
	Key             uint8 // 3 bits
	TriggerPush     bool
	TriggerVector   bool
	Reserved        bool
	TriggerEnter    bool
	TriggerExit     bool
	TriggerWallPush bool

	// u32
	ColourLights    bool
	Unknown8        bool
	OffBusyTime     uint8
	Unknown9        uint8 // 4 bits
	OffWaitTime     uint8
	Unknown10       uint8 // 2 bits
	Unknown11       uint8 // 4 bits
	CeilingPalette2 uint8 // 4 bits

	CeilingZMotion [2]int32
	FloorZMotion   [2]int32
	Markers        [2]int16

	// u8
	Crush     bool
	Unknown12 uint8 // 7 bits

	Unknown13 [2]uint8

	// u8
	Unknown14     bool
	DamageType    uint8 // 3 bits
	FloorPalette2 uint8 // 4 bits

	// u32
	Unknown15   uint8
	Locked      bool
	WindVel     uint16 // 10 bits
	WindAng     uint16 // 11 bits
	WindAlways  bool
	DudeLockout bool

	// u32
	Theta      uint16 // 11 bits
	ZRange     uint8  // 5 bits
	Speed2     uint16 // 11 bits
	Unknown16  bool
	MoveAlways bool
	BobFloor   bool
	BobCeiling bool
	Rotate     bool
}

// ParseXSector parses a sector extension from the first XSectorSize bytes of data.
func ParseXSector(data []byte) (XSector, error) {
	if len(data) < XSectorSize {
		return XSector{}, fmt.Errorf("%w: xsector needs %d bytes, have %d", errs.ErrTruncatedInput, XSectorSize, len(data))
	}

	var x XSector
	r := fieldReader{data: data}

	x.Data1 = r.u8()

	b := r.bits8()
	x.Data2 = b.u8(6)
	x.State = b.flag()
	x.Unknown2 = b.flag()

	r.raw(x.Unknown3[:])
	x.Data = r.u16()

	b = r.bits16()
	x.TxID = b.u16(10)
	x.OnWave = b.u8(3)
	x.OffWave = b.u8(3)

	b = r.bits32()
	x.RxID = b.u16(10)
	x.Cmd = b.u8(8)
	x.SendAtOn = b.flag()
	x.SendAtOff = b.flag()
	x.OnBusyTime = b.u8(8)
	x.Compressed2 = b.u8(4)

	x.OnWaitTime = r.u8()

	b = r.bits32()
	x.Unknown4 = b.u8(5)
	x.Interruptable = b.flag()
	x.LightAmplitude = b.u8(8)
	x.LightFrequency = b.u8(8)
	x.OnWaitSet = b.flag()
	x.OffWaitSet = b.flag()
	x.LightPhase = b.u8(8)

	b = r.bits8()
	x.LightWave = b.u8(4)
	x.ShadeAlways = b.flag()
	x.LightFloor = b.flag()
	x.LightCeiling = b.flag()
	x.LightWalls = b.flag()

	x.Unknown5 = r.u8()

	b = r.bits8()
	x.PanAlways = b.flag()
	x.PanFloor = b.flag()
	x.PanCeiling = b.flag()
	x.Drag = b.flag()
	x.Underwater = b.flag()
	x.Depth = b.u8(3)

	b = r.bits32()
	x.Speed = b.u8(8)
	x.Angle = b.u16(11)
	x.Unknown6 = b.flag()
	x.Decoupled = b.flag()
	x.OneShot = b.flag()
	x.Unknown7 = b.flag()
	x.Key = b.u8(3)
	x.TriggerPush = b.flag()
	x.TriggerVector = b.flag()
	x.Reserved = b.flag()
	x.TriggerEnter = b.flag()
	x.TriggerExit = b.flag()
	x.TriggerWallPush = b.flag()

	b = r.bits32()
	x.ColourLights = b.flag()
	x.Unknown8 = b.flag()
	x.OffBusyTime = b.u8(8)
	x.Unknown9 = b.u8(4)
	x.OffWaitTime = b.u8(8)
	x.Unknown10 = b.u8(2)
	x.Unknown11 = b.u8(4)
	x.CeilingPalette2 = b.u8(4)

	x.CeilingZMotion = [2]int32{r.i32(), r.i32()}
	x.FloorZMotion = [2]int32{r.i32(), r.i32()}
	x.Markers = [2]int16{r.i16(), r.i16()}

	b = r.bits8()
	x.Crush = b.flag()
	x.Unknown12 = b.u8(7)

	r.raw(x.Unknown13[:])

	b = r.bits8()
	x.Unknown14 = b.flag()
	x.DamageType = b.u8(3)
	x.FloorPalette2 = b.u8(4)

	b = r.bits32()
	x.Unknown15 = b.u8(8)
	x.Locked = b.flag()
	x.WindVel = b.u16(10)
	x.WindAng = b.u16(11)
	x.WindAlways = b.flag()
	x.DudeLockout = b.flag()

	b = r.bits32()
	x.Theta = b.u16(11)
	x.ZRange = b.u8(5)
	x.Speed2 = b.u16(11)
	x.Unknown16 = b.flag()
	x.MoveAlways = b.flag()
	x.BobFloor = b.flag()
	x.BobCeiling = b.flag()
	x.Rotate = b.flag()

	return x, nil
}

// Bytes returns the plaintext wire form of the extension.
func (x *XSector) Bytes() []byte {
	var b [XSectorSize]byte
	x.WriteToSlice(b[:], 0)

	return b[:]
}

// WriteToSlice writes the extension at data[offset:] and returns the next position.
func (x *XSector) WriteToSlice(data []byte, offset int) int {
	w := fieldWriter{data: data, off: offset}

	w.u8(x.Data1)

	var b bitWriter
	b.put(uint32(x.Data2), 6)
	b.flag(x.State)
	b.flag(x.Unknown2)
	w.bits8(b)

	w.raw(x.Unknown3[:])
	w.u16(x.Data)

	b = bitWriter{}
	b.put(uint32(x.TxID), 10)
	b.put(uint32(x.OnWave), 3)
	b.put(uint32(x.OffWave), 3)
	w.bits16(b)

	b = bitWriter{}
	b.put(uint32(x.RxID), 10)
	b.put(uint32(x.Cmd), 8)
	b.flag(x.SendAtOn)
	b.flag(x.SendAtOff)
	b.put(uint32(x.OnBusyTime), 8)
	b.put(uint32(x.Compressed2), 4)
	w.bits32(b)

	w.u8(x.OnWaitTime)

	b = bitWriter{}
	b.put(uint32(x.Unknown4), 5)
	b.flag(x.Interruptable)
	b.put(uint32(x.LightAmplitude), 8)
	b.put(uint32(x.LightFrequency), 8)
	b.flag(x.OnWaitSet)
	b.flag(x.OffWaitSet)
	b.put(uint32(x.LightPhase), 8)
	w.bits32(b)

	b = bitWriter{}
	b.put(uint32(x.LightWave), 4)
	b.flag(x.ShadeAlways)
	b.flag(x.LightFloor)
	b.flag(x.LightCeiling)
	b.flag(x.LightWalls)
	w.bits8(b)

	w.u8(x.Unknown5)

	b = bitWriter{}
	b.flag(x.PanAlways)
	b.flag(x.PanFloor)
	b.flag(x.PanCeiling)
	b.flag(x.Drag)
	b.flag(x.Underwater)
	b.put(uint32(x.Depth), 3)
	w.bits8(b)

	b = bitWriter{}
	b.put(uint32(x.Speed), 8)
	b.put(uint32(x.Angle), 11)
	b.flag(x.Unknown6)
	b.flag(x.Decoupled)
	b.flag(x.OneShot)
	b.flag(x.Unknown7)
	b.put(uint32(x.Key), 3)
	b.flag(x.TriggerPush)
	b.flag(x.TriggerVector)
	b.flag(x.Reserved)
	b.flag(x.TriggerEnter)
	b.flag(x.TriggerExit)
	b.flag(x.TriggerWallPush)
	w.bits32(b)

	b = bitWriter{}
	b.flag(x.ColourLights)
	b.flag(x.Unknown8)
	b.put(uint32(x.OffBusyTime), 8)
	b.put(uint32(x.Unknown9), 4)
	b.put(uint32(x.OffWaitTime), 8)
	b.put(uint32(x.Unknown10), 2)
	b.put(uint32(x.Unknown11), 4)
	b.put(uint32(x.CeilingPalette2), 4)
	w.bits32(b)

	for _, v := range x.CeilingZMotion {
		w.i32(v)
	}
	for _, v := range x.FloorZMotion {
		w.i32(v)
	}
	for _, v := range x.Markers {
		w.i16(v)
	}

	b = bitWriter{}
	b.flag(x.Crush)
	b.put(uint32(x.Unknown12), 7)
	w.bits8(b)

	w.raw(x.Unknown13[:])

	b = bitWriter{}
	b.flag(x.Unknown14)
	b.put(uint32(x.DamageType), 3)
	b.put(uint32(x.FloorPalette2), 4)
	w.bits8(b)

	b = bitWriter{}
	b.put(uint32(x.Unknown15), 8)
	b.flag(x.Locked)
	b.put(uint32(x.WindVel), 10)
	b.put(uint32(x.WindAng), 11)
	b.flag(x.WindAlways)
	b.flag(x.DudeLockout)
	w.bits32(b)

	b = bitWriter{}
	b.put(uint32(x.Theta), 11)
	b.put(uint32(x.ZRange), 5)
	b.put(uint32(x.Speed2), 11)
	b.flag(x.Unknown16)
	b.flag(x.MoveAlways)
	b.flag(x.BobFloor)
	b.flag(x.BobCeiling)
	b.flag(x.Rotate)
	w.bits32(b)

	return w.off
}
