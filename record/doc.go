// Package record walks a buffer of encrypted map records and decodes them into
// typed values.
//
// A run of records of one kind is decoded per call. For each record the
// decoder decrypts the base segment, parses it, evaluates the extension gate
// (Tags[2] > 0) and, when the gate is open, decrypts and parses the extension
// segment that follows. The offset just past the last consumed byte is
// returned so that the caller can thread it into the next call:
//
//	walls, off, err := dec.DecodeWalls(buf, off, wallCount, wallKey)
//	if err != nil {
//	    return err
//	}
//	sectors, off, err := dec.DecodeSectors(buf, off, sectorCount, sectorKey)
//
// # Extensions
//
// Sectors and sprites without an extension report ExtAbsent. Walls always
// carry an extension value: ExtDefault with a zero XWall when the gate is
// closed, ExtFromStream otherwise.
//
// # Buffer Ownership
//
// By default decryption happens in place. A failed call leaves the buffer as
// it found it: segments already decrypted by that call are encrypted again
// before the error is returned. WithPreserveInput(true) decrypts into a
// scratch copy and never writes to the buffer.
//
// A Decoder holds no per-call state and may be shared between goroutines,
// provided concurrent calls never target overlapping byte ranges when
// decoding in place.
package record
