// Package testutil builds CIS fixtures in memory so tests never depend on
// checked-in binaries.
package testutil

import (
	"bytes"

	"github.com/klauspost/compress/zlib"

	"github.com/diamondpixel/Chunkis/internal/format"
)

// PaletteSpec describes one global palette entry to encode.
type PaletteSpec struct {
	MappingID uint16
	Facing    byte
}

// EncodeChunk frames a chunk payload around an already-built instruction
// stream: magic, version, global palette, instruction length and bytes, and
// the trailing block entity count.
func EncodeChunk(version uint32, palette []PaletteSpec, inst []byte, blockEntities uint32) []byte {
	var b bytes.Buffer
	b.Write(beU32(format.Magic))
	b.Write(beU32(version))
	b.Write(beU32(uint32(len(palette))))
	for _, p := range palette {
		var e [format.PaletteEntrySize]byte
		format.PutU16(e[:], 0, p.MappingID)
		e[2] = p.Facing
		b.Write(e[:])
	}
	b.Write(beU32(uint32(len(inst))))
	b.Write(inst)
	b.Write(beU32(blockEntities))
	return b.Bytes()
}

// Deflate zlib-compresses b the way region slots are stored.
func Deflate(b []byte) []byte {
	var out bytes.Buffer
	w := zlib.NewWriter(&out)
	if _, err := w.Write(b); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return out.Bytes()
}

// BuildRegion lays out a region file from slot index to raw (uncompressed)
// chunk payload. Payloads are deflated and packed after the 2048-byte table.
func BuildRegion(slots map[int][]byte) []byte {
	table := make([]byte, format.RegionTableSize)
	var body bytes.Buffer
	for i := 0; i < format.RegionSlots; i++ {
		raw, ok := slots[i]
		if !ok {
			continue
		}
		compressed := Deflate(raw)
		off := format.RegionTableSize + body.Len()
		format.PutU32(table, i*format.RegionEntrySize, uint32(off))
		format.PutU32(table, i*format.RegionEntrySize+4, uint32(len(compressed)))
		body.Write(compressed)
	}
	return append(table, body.Bytes()...)
}

// BuildRegionRaw is BuildRegion without compression, for corruption tests
// that need exact control over the stored bytes.
func BuildRegionRaw(slots map[int][]byte) []byte {
	table := make([]byte, format.RegionTableSize)
	var body bytes.Buffer
	for i := 0; i < format.RegionSlots; i++ {
		stored, ok := slots[i]
		if !ok {
			continue
		}
		off := format.RegionTableSize + body.Len()
		format.PutU32(table, i*format.RegionEntrySize, uint32(off))
		format.PutU32(table, i*format.RegionEntrySize+4, uint32(len(stored)))
		body.Write(stored)
	}
	return append(table, body.Bytes()...)
}

func beU32(v uint32) []byte {
	var b [4]byte
	format.PutU32(b[:], 0, v)
	return b[:]
}
