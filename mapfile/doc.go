// Package mapfile reads whole Blood MAP files.
//
// A map file is a chain of blocks, all little-endian:
//
//	┌──────────────────────┬────────┬──────────────────────────────┐
//	│ Block                │ Bytes  │ Version 7 key                │
//	├──────────────────────┼────────┼──────────────────────────────┤
//	│ magic + version      │ 6      │ plain                        │
//	│ start position       │ 16     │ 0x4D                         │
//	│ sky settings         │ 11     │ 0x5D                         │
//	│ revisions + counts   │ 10     │ 0x68                         │
//	│ extra header (v7)    │ 128    │ wall count                   │
//	│ sky offsets          │ 2 × n  │ 2 × n                        │
//	│ sectors              │ varies │ revisions × 40               │
//	│ walls                │ varies │ (revisions × 40) | 0x4D      │
//	│ sprites              │ varies │ (revisions × 44) | 0x4D      │
//	│ CRC32 (IEEE)         │ 4      │ plain                        │
//	└──────────────────────┴────────┴──────────────────────────────┘
//
// Keys are truncated to one byte. Version 6.3 maps store every block in
// plaintext, have no extra header and always carry 16 sky offsets. In version
// 7 maps n is 1 << sky bits.
//
// Record sections are decoded by package record; by default only base records
// are decrypted (format.CipherBaseOnly) for version 7, nothing for 6.3.
//
// # Usage
//
//	m, err := mapfile.ReadFile("E1M1.MAP")
//	if err != nil {
//	    return err
//	}
//	for _, w := range m.Walls {
//	    if x, ok := w.Ext.Get(); ok {
//	        _ = x.TxID
//	    }
//	}
//
// Parse never modifies its input: decryption happens in a pooled copy.
package mapfile
