package cmd

import (
	"bytes"
	"encoding/json"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/blmap/endian"
	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/section"
)

// writePlainMap writes a version 6.3 map with one sector, three walls and one sprite.
func writePlainMap(t *testing.T, corruptCRC bool) string {
	t.Helper()

	le := endian.GetLittleEndianEngine()
	out := []byte("BLM\x1a\x03\x06")
	out = append(out, make([]byte, 16)...) // start position

	sky := make([]byte, 11)
	copy(sky[6:10], "Matt")
	out = append(out, sky...)

	counts := make([]byte, 10)
	endian.PutInt32(le, counts[0:4], 1)
	endian.PutInt16(le, counts[4:6], 1)
	endian.PutInt16(le, counts[6:8], 3)
	endian.PutInt16(le, counts[8:10], 1)
	out = append(out, counts...)
	out = append(out, make([]byte, 32)...) // 16 sky offsets

	s := section.Sector{WallCount: 3, FloorZ: 8192}
	out = append(out, s.Bytes()...)

	w := section.Wall{X: 64, Y: 64, Point2: 1, NextWall: -1, NextSector: -1, Tags: [3]int16{0, 0, 1}}
	out = append(out, w.Bytes()...)
	xw := section.XWall{TxID: 12, RxID: 13}
	out = append(out, xw.Bytes()...)
	for i := range 2 {
		w := section.Wall{X: int32(i * 128), Point2: int16((i + 2) % 3), NextWall: -1, NextSector: -1}
		out = append(out, w.Bytes()...)
	}

	sp := section.Sprite{X: 32, Y: 32, Picnum: 2050}
	out = append(out, sp.Bytes()...)

	crc := crc32.ChecksumIEEE(out)
	if corruptCRC {
		crc++
	}
	out = le.AppendUint32(out, crc)

	path := filepath.Join(t.TempDir(), "TEST.MAP")
	require.NoError(t, os.WriteFile(path, out, 0o600))

	return path
}

func TestRunInfo(t *testing.T) {
	path := writePlainMap(t, false)

	var out bytes.Buffer
	require.NoError(t, runInfo(&out, path))

	text := out.String()
	assert.Contains(t, text, "Version:      6.3")
	assert.Contains(t, text, "Revisions:    1")
	assert.Contains(t, text, "Sectors:      1 (0 extended)")
	assert.Contains(t, text, "Walls:        3 (1 extended)")
	assert.Contains(t, text, "Sprites:      1 (0 extended)")
	assert.Contains(t, text, "Sky offsets:  16")
	assert.Contains(t, text, "(ok)")
	assert.NotContains(t, text, "Compression:")
	assert.NotContains(t, text, "Copyright:")
}

func TestRunInfo_ChecksumMismatch(t *testing.T) {
	path := writePlainMap(t, true)

	var out bytes.Buffer
	require.NoError(t, runInfo(&out, path))
	assert.Contains(t, out.String(), "(MISMATCH)")
}

func TestRunInfo_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runInfo(&out, filepath.Join(t.TempDir(), "none.map"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunDump_YAML(t *testing.T) {
	path := writePlainMap(t, false)

	var out bytes.Buffer
	require.NoError(t, runDump(&out, path, dumpOptions{output: "yaml"}))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "6.3", doc["version"])
	assert.Len(t, doc["sectors"], 1)
	assert.Len(t, doc["walls"], 3)
	assert.Len(t, doc["sprites"], 1)
}

func TestRunDump_JSONSingleKind(t *testing.T) {
	path := writePlainMap(t, false)

	var out bytes.Buffer
	require.NoError(t, runDump(&out, path, dumpOptions{kind: "wall", output: "json"}))

	var doc struct {
		Version string `json:"version"`
		Sectors []any  `json:"sectors"`
		Walls   []struct {
			Index     int            `json:"index"`
			Extension string         `json:"extension"`
			Ext       map[string]any `json:"ext"`
		} `json:"walls"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))

	assert.Nil(t, doc.Sectors)
	require.Len(t, doc.Walls, 3)
	assert.Equal(t, "FromStream", doc.Walls[0].Extension)
	assert.InDelta(t, 12, doc.Walls[0].Ext["TxID"], 0)
	assert.Equal(t, "Default", doc.Walls[1].Extension)
	assert.Equal(t, 2, doc.Walls[2].Index)
}

func TestRunDump_Errors(t *testing.T) {
	path := writePlainMap(t, true)
	var out bytes.Buffer

	err := runDump(&out, path, dumpOptions{kind: "door", output: "yaml"})
	require.ErrorIs(t, err, errs.ErrInvalidRecordKind)

	err = runDump(&out, path, dumpOptions{output: "xml"})
	require.ErrorContains(t, err, "unknown output format")

	err = runDump(&out, path, dumpOptions{output: "yaml"})
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)

	require.NoError(t, runDump(&out, path, dumpOptions{output: "yaml", skipChecksum: true}))
}

func TestRootCommand(t *testing.T) {
	path := writePlainMap(t, false)

	var out, stderr bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"info", path, "--verbose"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Version:      6.3")
	assert.Contains(t, stderr.String(), "level=DEBUG")
}
