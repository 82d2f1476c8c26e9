package section

import (
	"fmt"

	"github.com/arloliu/blmap/errs"
)

// XWall is the 24-byte wall extension.
//
// Walls always carry an XWall in decoded form: when the gate is off the
// record layer substitutes the zero value.
type XWall struct {
	Data1 uint8

	// u8
	Data2 uint8 // 6 bits
	State bool
	Data3 bool

	Data4 [2]uint8
	Data  int16

	// u16
	TxID  uint16 // 10 bits
	Data5 uint8  // 6 bits

	// u32
	RxID     uint16 // 10 bits
	Cmd      uint8
	GoingOn  bool
	GoingOff bool
	BusyTime uint16 // 12 bits

	// u32
	WaitTime      uint16 // 12 bits
	RestState     bool
	Interruptable bool
	PanAlways     bool
	PanX          uint8 // 7 bits
	Data8         bool
	PanY          uint8 // 7 bits
	Data9         bool
	Decoupled     bool

	// u8
	OneShot  bool
	Data10   bool
	Key      uint8 // 3 bits
	Push     bool
	Vector   bool
	Reserved bool

	Data11 [2]uint8

	// u8
	Data12      uint8 // 2 bits
	Locked      bool
	DudeLockout bool
	Data13      uint8 // 4 bits

	Data14 [4]uint8
}

// ParseXWall parses a wall extension from the first XWallSize bytes of data.
func ParseXWall(data []byte) (XWall, error) {
	if len(data) < XWallSize {
		return XWall{}, fmt.Errorf("%w: xwall needs %d bytes, have %d", errs.ErrTruncatedInput, XWallSize, len(data))
	}

	var x XWall
	r := fieldReader{data: data}

	x.Data1 = r.u8()

	b := r.bits8()
	x.Data2 = b.u8(6)
	x.State = b.flag()
	x.Data3 = b.flag()

	r.raw(x.Data4[:])
	x.Data = r.i16()

	b = r.bits16()
	x.TxID = b.u16(10)
	x.Data5 = b.u8(6)

	b = r.bits32()
	x.RxID = b.u16(10)
	x.Cmd = b.u8(8)
	x.GoingOn = b.flag()
	x.GoingOff = b.flag()
	x.BusyTime = b.u16(12)

	b = r.bits32()
	x.WaitTime = b.u16(12)
	x.RestState = b.flag()
	x.Interruptable = b.flag()
	x.PanAlways = b.flag()
	x.PanX = b.u8(7)
	x.Data8 = b.flag()
	x.PanY = b.u8(7)
	x.Data9 = b.flag()
	x.Decoupled = b.flag()

	b = r.bits8()
	x.OneShot = b.flag()
	x.Data10 = b.flag()
	x.Key = b.u8(3)
	x.Push = b.flag()
	x.Vector = b.flag()
	x.Reserved = b.flag()

	r.raw(x.Data11[:])

	b = r.bits8()
	x.Data12 = b.u8(2)
	x.Locked = b.flag()
	x.DudeLockout = b.flag()
	x.Data13 = b.u8(4)

	r.raw(x.Data14[:])

	return x, nil
}

// IsZero reports whether every field holds its zero value.
func (x XWall) IsZero() bool {
	return x == XWall{}
}

// Bytes returns the plaintext wire form of the extension.
func (x *XWall) Bytes() []byte {
	var b [XWallSize]byte
	x.WriteToSlice(b[:], 0)

	return b[:]
}

// WriteToSlice writes the extension at data[offset:] and returns the next position.
func (x *XWall) WriteToSlice(data []byte, offset int) int {
	w := fieldWriter{data: data, off: offset}

	w.u8(x.Data1)

	var b bitWriter
	b.put(uint32(x.Data2), 6)
	b.flag(x.State)
	b.flag(x.Data3)
	w.bits8(b)

	w.raw(x.Data4[:])
	w.i16(x.Data)

	b = bitWriter{}
	b.put(uint32(x.TxID), 10)
	b.put(uint32(x.Data5), 6)
	w.bits16(b)

	b = bitWriter{}
	b.put(uint32(x.RxID), 10)
	b.put(uint32(x.Cmd), 8)
	b.flag(x.GoingOn)
	b.flag(x.GoingOff)
	b.put(uint32(x.BusyTime), 12)
	w.bits32(b)

	b = bitWriter{}
	b.put(uint32(x.WaitTime), 12)
	b.flag(x.RestState)
	b.flag(x.Interruptable)
	b.flag(x.PanAlways)
	b.put(uint32(x.PanX), 7)
	b.flag(x.Data8)
	b.put(uint32(x.PanY), 7)
	b.flag(x.Data9)
	b.flag(x.Decoupled)
	w.bits32(b)

	b = bitWriter{}
	b.flag(x.OneShot)
	b.flag(x.Data10)
	b.put(uint32(x.Key), 3)
	b.flag(x.Push)
	b.flag(x.Vector)
	b.flag(x.Reserved)
	w.bits8(b)

	w.raw(x.Data11[:])

	b = bitWriter{}
	b.put(uint32(x.Data12), 2)
	b.flag(x.Locked)
	b.flag(x.DudeLockout)
	b.put(uint32(x.Data13), 4)
	w.bits8(b)

	w.raw(x.Data14[:])

	return w.off
}
