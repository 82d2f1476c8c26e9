package section

import (
	"fmt"

	"github.com/arloliu/blmap/errs"
)

// XSprite is the 56-byte sprite extension holding actor, trigger and launch settings.
type XSprite struct {
	// u16
	ActorIndex uint16 // 14 bits
	State      bool
	Unknown2   bool

	Unknown3 uint8
	Unknown4 uint8

	// u32
	TxID     uint16 // 10 bits
	RxID     uint16 // 10 bits
	Cmd      uint8
	GoingOn  bool
	GoingOff bool
	Wave     uint8 // 2 bits

	// u32
	BusyTime      uint16 // 12 bits
	WaitTime      uint16 // 12 bits
	RestState     bool
	Interruptable bool
	Unknown5      uint8 // 5 bits
	LaunchTeam    bool

	DropItem uint8

	// u16
	Decoupled bool
	OneShot   bool
	Unknown6  bool
	Key       uint8 // 3 bits
	Push      bool
	Vector    bool
	Impact    bool
	Pickup    bool
	Touch     bool
	Sight     bool
	Proximity bool
	Unknown7  uint8 // 2 bits
	Launch1   bool

	// u8
	Launch2         bool
	Launch3         bool
	Launch4         bool
	Launch5         bool
	LaunchSingle    bool
	LaunchBloodbath bool
	LaunchCoop      bool
	DudeLockout     bool

	Data1    uint16
	Data2    uint16
	Data3    uint16
	Unknown8 uint8

	// u8
	Unknown9  uint8 // 5 bits
	Locked    bool
	Unknown10 uint8 // 2 bits

	// u32
	Respawn   uint8 // 2 bits
	Data4     uint16
	Unknown11 uint8 // 6 bits
	LockMsg   uint8

	Unknown12 uint8

	// u8
	Unknown13  uint8 // 4 bits
	DudeDeaf   bool
	DudeAmbush bool
	DudeGuard  bool
	Reserved   bool

	Unknown14 [26]uint8
}

// ParseXSprite parses a sprite extension from the first XSpriteSize bytes of data.
func ParseXSprite(data []byte) (XSprite, error) {
	if len(data) < XSpriteSize {
		return XSprite{}, fmt.Errorf("%w: xsprite needs %d bytes, have %d", errs.ErrTruncatedInput, XSpriteSize, len(data))
	}

	var x XSprite
	r := fieldReader{data: data}

	b := r.bits16()
	x.ActorIndex = b.u16(14)
	x.State = b.flag()
	x.Unknown2 = b.flag()

	x.Unknown3 = r.u8()
	x.Unknown4 = r.u8()

	b = r.bits32()
	x.TxID = b.u16(10)
	x.RxID = b.u16(10)
	x.Cmd = b.u8(8)
	x.GoingOn = b.flag()
	x.GoingOff = b.flag()
	x.Wave = b.u8(2)

	b = r.bits32()
	x.BusyTime = b.u16(12)
	x.WaitTime = b.u16(12)
	x.RestState = b.flag()
	x.Interruptable = b.flag()
	x.Unknown5 = b.u8(5)
	x.LaunchTeam = b.flag()

	x.DropItem = r.u8()

	b = r.bits16()
	x.Decoupled = b.flag()
	x.OneShot = b.flag()
	x.Unknown6 = b.flag()
	x.Key = b.u8(3)
	x.Push = b.flag()
	x.Vector = b.flag()
	x.Impact = b.flag()
	x.Pickup = b.flag()
	x.Touch = b.flag()
	x.Sight = b.flag()
	x.Proximity = b.flag()
	x.Unknown7 = b.u8(2)
	x.Launch1 = b.flag()

	b = r.bits8()
	x.Launch2 = b.flag()
	x.Launch3 = b.flag()
	x.Launch4 = b.flag()
	x.Launch5 = b.flag()
	x.LaunchSingle = b.flag()
	x.LaunchBloodbath = b.flag()
	x.LaunchCoop = b.flag()
	x.DudeLockout = b.flag()

	x.Data1 = r.u16()
	x.Data2 = r.u16()
	x.Data3 = r.u16()
	x.Unknown8 = r.u8()

	b = r.bits8()
	x.Unknown9 = b.u8(5)
	x.Locked = b.flag()
	x.Unknown10 = b.u8(2)

	b = r.bits32()
	x.Respawn = b.u8(2)
	x.Data4 = b.u16(16)
	x.Unknown11 = b.u8(6)
	x.LockMsg = b.u8(8)

	x.Unknown12 = r.u8()

	b = r.bits8()
	x.Unknown13 = b.u8(4)
	x.DudeDeaf = b.flag()
	x.DudeAmbush = b.flag()
	x.DudeGuard = b.flag()
	x.Reserved = b.flag()

	r.raw(x.Unknown14[:])

	return x, nil
}

// Bytes returns the plaintext wire form of the extension.
func (x *XSprite) Bytes() []byte {
	var b [XSpriteSize]byte
	x.WriteToSlice(b[:], 0)

	return b[:]
}

// WriteToSlice writes the extension at data[offset:] and returns the next position.
func (x *XSprite) WriteToSlice(data []byte, offset int) int {
	w := fieldWriter{data: data, off: offset}

	var b bitWriter
	b.put(uint32(x.ActorIndex), 14)
	b.flag(x.State)
	b.flag(x.Unknown2)
	w.bits16(b)

	w.u8(x.Unknown3)
	w.u8(x.Unknown4)

	b = bitWriter{}
	b.put(uint32(x.TxID), 10)
	b.put(uint32(x.RxID), 10)
	b.put(uint32(x.Cmd), 8)
	b.flag(x.GoingOn)
	b.flag(x.GoingOff)
	b.put(uint32(x.Wave), 2)
	w.bits32(b)

	b = bitWriter{}
	b.put(uint32(x.BusyTime), 12)
	b.put(uint32(x.WaitTime), 12)
	b.flag(x.RestState)
	b.flag(x.Interruptable)
	b.put(uint32(x.Unknown5), 5)
	b.flag(x.LaunchTeam)
	w.bits32(b)

	w.u8(x.DropItem)

	b = bitWriter{}
	b.flag(x.Decoupled)
	b.flag(x.OneShot)
	b.flag(x.Unknown6)
	b.put(uint32(x.Key), 3)
	b.flag(x.Push)
	b.flag(x.Vector)
	b.flag(x.Impact)
	b.flag(x.Pickup)
	b.flag(x.Touch)
	b.flag(x.Sight)
	b.flag(x.Proximity)
	b.put(uint32(x.Unknown7), 2)
	b.flag(x.Launch1)
	w.bits16(b)

	b = bitWriter{}
	b.flag(x.Launch2)
	b.flag(x.Launch3)
	b.flag(x.Launch4)
	b.flag(x.Launch5)
	b.flag(x.LaunchSingle)
	b.flag(x.LaunchBloodbath)
	b.flag(x.LaunchCoop)
	b.flag(x.DudeLockout)
	w.bits8(b)

	w.u16(x.Data1)
	w.u16(x.Data2)
	w.u16(x.Data3)
	w.u8(x.Unknown8)

	b = bitWriter{}
	b.put(uint32(x.Unknown9), 5)
	b.flag(x.Locked)
	b.put(uint32(x.Unknown10), 2)
	w.bits8(b)

	b = bitWriter{}
	b.put(uint32(x.Respawn), 2)
	b.put(uint32(x.Data4), 16)
	b.put(uint32(x.Unknown11), 6)
	b.put(uint32(x.LockMsg), 8)
	w.bits32(b)

	w.u8(x.Unknown12)

	b = bitWriter{}
	b.put(uint32(x.Unknown13), 4)
	b.flag(x.DudeDeaf)
	b.flag(x.DudeAmbush)
	b.flag(x.DudeGuard)
	b.flag(x.Reserved)
	w.bits8(b)

	w.raw(x.Unknown14[:])

	return w.off
}
