package format

type (
	RecordKind      uint8
	CipherScope     uint8
	CompressionType uint8
)

const (
	KindSector RecordKind = 0x1 // KindSector selects sector records (base 40 bytes, extension 60 bytes).
	KindWall   RecordKind = 0x2 // KindWall selects wall records (base 32 bytes, extension 24 bytes).
	KindSprite RecordKind = 0x3 // KindSprite selects sprite records (base 44 bytes, extension 56 bytes).
)

const (
	// CipherPerSegment decrypts the base record and, separately, the extension record.
	// Each segment restarts the cipher counter at zero.
	CipherPerSegment CipherScope = 0x1
	// CipherBaseOnly decrypts base records and reads extension records verbatim.
	// Shipping version 7 maps are stored this way.
	CipherBaseOnly CipherScope = 0x2
	// CipherNone reads every segment verbatim (version 6.3 plaintext maps).
	CipherNone CipherScope = 0x3
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k RecordKind) String() string {
	switch k {
	case KindSector:
		return "Sector"
	case KindWall:
		return "Wall"
	case KindSprite:
		return "Sprite"
	default:
		return "Unknown"
	}
}

// Valid reports whether k names one of the three record kinds.
func (k RecordKind) Valid() bool {
	return k == KindSector || k == KindWall || k == KindSprite
}

func (s CipherScope) String() string {
	switch s {
	case CipherPerSegment:
		return "PerSegment"
	case CipherBaseOnly:
		return "BaseOnly"
	case CipherNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a known cipher scope.
func (s CipherScope) Valid() bool {
	return s == CipherPerSegment || s == CipherBaseOnly || s == CipherNone
}

// DecryptsBase reports whether base records are decrypted under this scope.
func (s CipherScope) DecryptsBase() bool {
	return s == CipherPerSegment || s == CipherBaseOnly
}

// DecryptsExtension reports whether extension records are decrypted under this scope.
func (s CipherScope) DecryptsExtension() bool {
	return s == CipherPerSegment
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
