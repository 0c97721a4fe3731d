package cis

import (
	"fmt"
	"io"

	"github.com/diamondpixel/Chunkis/internal/bitio"
	"github.com/diamondpixel/Chunkis/internal/format"
)

// DecodeChunk reads one chunk payload from r and returns its block changes.
//
// An empty stream returns ErrNoChunk, the normal "nothing here" signal when
// iterating. A stream that starts but does not carry the CIS4 magic returns
// ErrBadMagic; a header field cut short returns ErrTruncated. The instruction
// stream and the trailing block entity count are decoded leniently: short
// instruction bytes zero-pad in the bit reader, and a missing trailing count
// defaults to zero. Both match what historical encoders emit.
func DecodeChunk(r io.Reader, res Resolver) (*ChunkRecord, error) {
	var head [4]byte
	n, err := io.ReadFull(r, head[:])
	if n == 0 {
		return nil, ErrNoChunk
	}
	if err != nil {
		return nil, fmt.Errorf("cis: reading magic: %w", ErrTruncated)
	}
	if magic := format.U32(head[:]); magic != format.Magic {
		return nil, fmt.Errorf("cis: magic 0x%08X: %w", magic, ErrBadMagic)
	}

	version, err := readU32(r, "version")
	if err != nil {
		return nil, err
	}

	paletteSize, err := readU32(r, "palette size")
	if err != nil {
		return nil, err
	}
	if paletteSize > format.MaxGlobalPalette {
		return nil, fmt.Errorf("cis: implausible global palette size %d", paletteSize)
	}
	palette := make([]PaletteEntry, 0, paletteSize)
	for i := uint32(0); i < paletteSize; i++ {
		var e [format.PaletteEntrySize]byte
		if _, err := io.ReadFull(r, e[:]); err != nil {
			return nil, fmt.Errorf("cis: reading palette entry %d: %w", i, ErrTruncated)
		}
		id := format.U16(e[:])
		facing := e[2]
		palette = append(palette, PaletteEntry{
			MappingID: id,
			Facing:    facing,
			State:     ResolveState(res, id, facing),
		})
	}

	instLen, err := readU32(r, "instruction length")
	if err != nil {
		return nil, err
	}
	// Short instruction streams are not an error; the bit reader zero-pads.
	inst, err := io.ReadAll(io.LimitReader(r, int64(instLen)))
	if err != nil {
		return nil, fmt.Errorf("cis: reading instruction stream: %w", err)
	}

	// The trailing block entity count is zero-defaulted when absent.
	var tail [4]byte
	var blockEntities uint32
	if tn, _ := io.ReadFull(r, tail[:]); tn == len(tail) {
		blockEntities = format.U32(tail[:])
	}

	br := bitio.NewReader(inst)
	sectionCount := br.Read(format.SectionCountBits)
	var blocks []BlockChange
	for s := uint32(0); s < sectionCount; s++ {
		sectionY := br.ReadZigzag(format.SectionYBits)
		// Micro-cubes tile the section in fixed order: major-Y outer,
		// then major-Z, then major-X.
		for my := 0; my < format.MicroCubeDim; my++ {
			for mz := 0; mz < format.MicroCubeDim; mz++ {
				for mx := 0; mx < format.MicroCubeDim; mx++ {
					blocks = decodeMicroCube(br, palette, sectionY, blocks)
				}
			}
		}
	}

	return &ChunkRecord{
		Version:          version,
		Palette:          palette,
		Blocks:           blocks,
		BlockEntityCount: blockEntities,
	}, nil
}

func readU32(r io.Reader, field string) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("cis: reading %s: %w", field, ErrTruncated)
	}
	return format.U32(b[:]), nil
}
