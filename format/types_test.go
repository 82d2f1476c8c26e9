package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordKind(t *testing.T) {
	tests := []struct {
		kind  RecordKind
		name  string
		valid bool
	}{
		{KindSector, "Sector", true},
		{KindWall, "Wall", true},
		{KindSprite, "Sprite", true},
		{RecordKind(0), "Unknown", false},
		{RecordKind(4), "Unknown", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.name, tt.kind.String())
		require.Equal(t, tt.valid, tt.kind.Valid(), tt.name)
	}
}

func TestCipherScope(t *testing.T) {
	tests := []struct {
		scope   CipherScope
		name    string
		valid   bool
		base    bool
		extData bool
	}{
		{CipherPerSegment, "PerSegment", true, true, true},
		{CipherBaseOnly, "BaseOnly", true, true, false},
		{CipherNone, "None", true, false, false},
		{CipherScope(0), "Unknown", false, false, false},
		{CipherScope(9), "Unknown", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.scope.String())
			require.Equal(t, tt.valid, tt.scope.Valid())
			require.Equal(t, tt.base, tt.scope.DecryptsBase())
			require.Equal(t, tt.extData, tt.scope.DecryptsExtension())
		})
	}
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
