// Package section defines the fixed-size binary layouts of Blood map records.
//
// A map stores three record families. Every record starts with a base layout
// whose last field is a three-element tag array; when Tags[2] > 0 the base is
// followed by a game-specific extension layout. This package parses and
// serializes all six shapes. It never decrypts: callers hand it plaintext.
//
// # Shapes
//
//	Shape    | Size | Type
//	---------|------|---------
//	Sector   | 40   | Sector
//	Wall     | 32   | Wall
//	Sprite   | 44   | Sprite
//	XSector  | 60   | XSector
//	XWall    | 24   | XWall
//	XSprite  | 56   | XSprite
//
// # Sector Format
//
//	Bytes  | Field            | Type
//	-------|------------------|-----------
//	0-1    | FirstWall        | int16
//	2-3    | WallCount        | int16
//	4-7    | CeilingZ         | int32
//	8-11   | FloorZ           | int32
//	12-13  | CeilingStat      | uint16 (SectorStat)
//	14-15  | FloorStat        | uint16 (SectorStat)
//	16-17  | CeilingPicnum    | int16
//	18-19  | CeilingHeinum    | int16
//	20     | CeilingShade     | int8
//	21-23  | Ceiling palette, x/y panning | uint8 x3
//	24-25  | FloorPicnum      | int16
//	26-27  | FloorHeinum      | int16
//	28     | FloorShade       | int8
//	29-31  | Floor palette, x/y panning | uint8 x3
//	32     | Visibility       | uint8
//	33     | Filler           | uint8
//	34-39  | Tags             | int16 x3
//
// # Wall Format
//
//	Bytes  | Field            | Type
//	-------|------------------|-----------
//	0-7    | X, Y             | int32 x2
//	8-13   | Point2, NextWall, NextSector | int16 x3
//	14-15  | Stat             | uint16 (WallStat)
//	16-19  | Picnum, OverPicnum | int16 x2
//	20     | Shade            | int8
//	21-25  | Palette, RepeatX, RepeatY, PanningX, PanningY | uint8 x5
//	26-31  | Tags             | int16 x3
//
// # Sprite Format
//
//	Bytes  | Field            | Type
//	-------|------------------|-----------
//	0-11   | X, Y, Z          | int32 x3
//	12-13  | Stat             | uint16 (SpriteStat)
//	14-15  | Picnum           | int16
//	16     | Shade            | int8
//	17-21  | Palette, ClipDistance, Filler, RepeatX, RepeatY | uint8 x5
//	22-23  | OffsetX, OffsetY | int8 x2
//	24-37  | Sector, Status, Theta, Owner, VelocityX/Y/Z | int16 x7
//	38-43  | Tags             | int16 x3
//
// # Packed Words
//
// Stat words and most extension fields are bit-packed. A packed word is read
// as a little-endian unsigned integer of its declared width and split into
// sub-fields starting at bit 0, in declaration order. For example the wall
// stat word:
//
//	Bit   | Field
//	------|----------------
//	0     | Blocking
//	1     | BottomSwap
//	2     | Align
//	3     | XFlip
//	4     | Masking
//	5     | OneWay
//	6     | Blocking2
//	7     | Translucent
//	8     | YFlip
//	9     | TranslucentRev
//	10-13 | Reserved
//	14    | PolyBlue
//	15    | PolyGreen
//
// Sub-fields are exposed as the narrowest unsigned Go type that holds them and
// single bits as bool. Serialization masks values to their declared width, so
// out-of-range values are truncated rather than spilling into neighbours.
// Unknown and reserved bits are kept so that parse followed by serialize
// reproduces the input byte for byte.
//
// # Thread Safety
//
// All types in this package are plain values and are safe for concurrent use.
package section
