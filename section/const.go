package section

// fixed record sizes in bytes
const (
	SectorSize  = 40 // base sector record
	WallSize    = 32 // base wall record
	SpriteSize  = 44 // base sprite record
	XSectorSize = 60 // sector extension record
	XWallSize   = 24 // wall extension record
	XSpriteSize = 56 // sprite extension record
)

const (
	TagCount          = 3 // number of int16 tags closing every base record
	ExtensionTagIndex = 2 // tag slot that gates the extension record
)
