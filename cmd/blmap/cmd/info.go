package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/format"
	"github.com/arloliu/blmap/internal/hash"
	"github.com/arloliu/blmap/mapfile"
	"github.com/arloliu/blmap/record"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print a summary of a map file",
	Long: `Print the version, start position, record counts, revision counter,
fingerprint and checksum status of a map file.

Example:
  blmap info E1M1.MAP
  blmap info E1M1.MAP.zst`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(cmd.OutOrStdout(), args[0])
	},
}

func runInfo(w io.Writer, path string) error {
	crcStatus := "ok"

	m, err := readMap(path)
	if errors.Is(err, errs.ErrChecksumMismatch) {
		logger.Warn("checksum mismatch", "path", path, "err", err)
		crcStatus = "MISMATCH"
		m, err = readMap(path, mapfile.WithChecksum(false))
	}
	if err != nil {
		return err
	}

	h := m.Header
	fmt.Fprintf(w, "File:         %s\n", path)
	fmt.Fprintf(w, "Version:      %s\n", h.Version)
	if m.Stats.Algorithm != format.CompressionNone {
		fmt.Fprintf(w, "Compression:  %s (%d -> %d bytes, %.1f%% saved)\n",
			m.Stats.Algorithm, m.Stats.OriginalSize, m.Stats.CompressedSize, m.Stats.SpaceSavings())
	}
	fmt.Fprintf(w, "Start:        x=%d y=%d z=%d theta=%d sector=%d\n",
		h.Start.X, h.Start.Y, h.Start.Z, h.StartTheta, h.StartSector)
	fmt.Fprintf(w, "Revisions:    %d\n", h.Revisions)
	fmt.Fprintf(w, "Sectors:      %d (%d extended)\n", len(m.Sectors), countExtended(m.Sectors, func(r record.Sector) bool { return r.Ext.InStream() }))
	fmt.Fprintf(w, "Walls:        %d (%d extended)\n", len(m.Walls), countExtended(m.Walls, func(r record.Wall) bool { return r.Ext.InStream() }))
	fmt.Fprintf(w, "Sprites:      %d (%d extended)\n", len(m.Sprites), countExtended(m.Sprites, func(r record.Sprite) bool { return r.Ext.InStream() }))
	fmt.Fprintf(w, "Sky offsets:  %d\n", len(m.SkyOffsets))
	if h.Extra != nil {
		fmt.Fprintf(w, "Copyright:    %s\n", h.Extra.CopyrightString())
	}
	fmt.Fprintf(w, "Fingerprint:  %s\n", hash.Hex(m.Fingerprint))
	fmt.Fprintf(w, "CRC32:        %08x (%s)\n", m.CRC, crcStatus)

	return nil
}

func countExtended[R any](records []R, extended func(R) bool) int {
	n := 0
	for _, r := range records {
		if extended(r) {
			n++
		}
	}

	return n
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
