package cis

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zlib"

	"github.com/diamondpixel/Chunkis/internal/format"
	"github.com/diamondpixel/Chunkis/internal/mmfile"
)

// Entry is one slot in a region file's offset table. A slot with zero offset
// or zero length holds no chunk.
type Entry struct {
	Offset uint32
	Length uint32
}

// Present reports whether the slot holds a chunk payload.
func (e Entry) Present() bool { return e.Offset > 0 && e.Length > 0 }

// DecodedChunk is one slot's decode result. Err is set when the slot's
// payload failed to inflate or decode; the failure is isolated to the slot.
type DecodedChunk struct {
	X     int
	Z     int
	Chunk *ChunkRecord
	Err   error
}

// Region reads a CIS region file: a 2048-byte table of 256 big-endian
// (offset, length) entries indexed z*16+x, followed by zlib-compressed chunk
// payloads. Inputs shorter than the table are treated as a single standalone
// chunk payload, optionally zlib-wrapped.
//
// A Region is read-only after Open; slots may be decoded concurrently.
type Region struct {
	data       []byte
	entries    [format.RegionSlots]Entry
	standalone bool
	cleanup    func() error
}

// Open memory-maps the file at path and parses its slot table.
func Open(path string) (*Region, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("cis: opening region %s: %w", path, err)
	}
	r := OpenBytes(data)
	r.cleanup = cleanup
	return r, nil
}

// OpenBytes parses a region from an in-memory byte slice. The Region
// references data without copying it.
func OpenBytes(data []byte) *Region {
	r := &Region{data: data}
	if len(data) < format.RegionTableSize {
		r.standalone = true
		return r
	}
	for i := range r.entries {
		off := i * format.RegionEntrySize
		r.entries[i] = Entry{
			Offset: format.ReadU32(data, off),
			Length: format.ReadU32(data, off+4),
		}
	}
	return r
}

// Close releases the mapping, if any. The Region and every payload slice
// derived from it are invalid afterwards.
func (r *Region) Close() error {
	if r.cleanup == nil {
		return nil
	}
	c := r.cleanup
	r.cleanup = nil
	r.data = nil
	return c()
}

// Standalone reports whether the input was a bare chunk payload rather than
// a region table.
func (r *Region) Standalone() bool { return r.standalone }

// Entry returns the table entry for chunk-grid coordinates. Out-of-range
// coordinates and standalone inputs yield the empty entry.
func (r *Region) Entry(x, z int) Entry {
	if r.standalone || x < 0 || x >= format.RegionSize || z < 0 || z >= format.RegionSize {
		return Entry{}
	}
	return r.entries[format.SlotIndex(x, z)]
}

// Payload returns the decompressed chunk payload for a slot. For standalone
// inputs (any coordinates) it returns the inflated input, or the raw input
// bytes when inflation fails.
func (r *Region) Payload(x, z int) ([]byte, error) {
	if r.standalone {
		return r.standalonePayload(), nil
	}
	e := r.Entry(x, z)
	if !e.Present() {
		return nil, ErrNoChunk
	}
	end := int64(e.Offset) + int64(e.Length)
	if int64(e.Offset) >= int64(len(r.data)) || end > int64(len(r.data)) {
		return nil, fmt.Errorf("cis: slot (%d,%d) extends past end of region (offset %d, length %d)", x, z, e.Offset, e.Length)
	}
	payload, err := inflate(r.data[e.Offset:end])
	if err != nil {
		return nil, fmt.Errorf("cis: inflating slot (%d,%d): %w", x, z, err)
	}
	return payload, nil
}

// DecodeSlot inflates and decodes one slot.
func (r *Region) DecodeSlot(x, z int, res Resolver) (*ChunkRecord, error) {
	payload, err := r.Payload(x, z)
	if err != nil {
		return nil, err
	}
	return DecodeChunk(bytes.NewReader(payload), res)
}

// Chunks returns an iterator over the present slots. Each present slot
// yields one DecodedChunk; corrupt slots surface through its Err field and
// never stop the iteration.
func (r *Region) Chunks(res Resolver) *ChunkIterator {
	return &ChunkIterator{r: r, res: res}
}

// DecodeAll decodes every present slot and returns the successes, in slot
// order. Failed slots are silently skipped; use Chunks to observe them.
func (r *Region) DecodeAll(res Resolver) []DecodedChunk {
	var out []DecodedChunk
	it := r.Chunks(res)
	for {
		dc, err := it.Next()
		if err == io.EOF {
			return out
		}
		if dc.Err == nil {
			out = append(out, dc)
		}
	}
}

// ChunkIterator walks a region's present slots one decode at a time, so a
// consumer can render chunks incrementally instead of materializing all 256
// up front. Next returns io.EOF after the last present slot.
type ChunkIterator struct {
	r    *Region
	res  Resolver
	idx  int
	done bool
}

// Next decodes and returns the next present slot.
func (it *ChunkIterator) Next() (DecodedChunk, error) {
	if it.done {
		return DecodedChunk{}, io.EOF
	}

	if it.r.standalone {
		it.done = true
		rec, err := DecodeChunk(bytes.NewReader(it.r.standalonePayload()), it.res)
		if errors.Is(err, ErrNoChunk) {
			return DecodedChunk{}, io.EOF
		}
		if err != nil {
			return DecodedChunk{Err: err}, nil
		}
		return DecodedChunk{Chunk: rec}, nil
	}

	for it.idx < format.RegionSlots {
		i := it.idx
		it.idx++
		if !it.r.entries[i].Present() {
			continue
		}
		x, z := i%format.RegionSize, i/format.RegionSize
		rec, err := it.r.DecodeSlot(x, z, it.res)
		return DecodedChunk{X: x, Z: z, Chunk: rec, Err: err}, nil
	}
	it.done = true
	return DecodedChunk{}, io.EOF
}

// standalonePayload inflates the whole input, falling back to the raw bytes
// when it is not zlib-wrapped.
func (r *Region) standalonePayload() []byte {
	if payload, err := inflate(r.data); err == nil {
		return payload
	}
	return r.data
}

func inflate(b []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// ParseRegionName extracts region coordinates from a region file name of the
// form r.<rx>.<rz>.cis. The second return is false when the name does not
// follow that pattern.
func ParseRegionName(path string) (rx, rz int, ok bool) {
	parts := strings.Split(filepath.Base(path), ".")
	if len(parts) < 4 || parts[0] != "r" {
		return 0, 0, false
	}
	rx, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	rz, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, false
	}
	return rx, rz, true
}
