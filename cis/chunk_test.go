package cis_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamondpixel/Chunkis/cis"
	"github.com/diamondpixel/Chunkis/internal/bitio"
	"github.com/diamondpixel/Chunkis/internal/testutil"
)

// writeEmptyCubes appends n micro-cubes with empty local palettes.
func writeEmptyCubes(w *bitio.Writer, n int) {
	for i := 0; i < n; i++ {
		w.WriteBits(0, 8)
	}
}

// singleBlockInst builds the instruction stream for one section holding a
// single block at chunk-local (x, y, z) using global palette index 0.
func singleBlockInst(t *testing.T, sectionY int32, x, y, z int32) []byte {
	t.Helper()
	w := bitio.NewWriter()
	w.WriteBits(1, 16)           // section count
	w.WriteZigzag(sectionY, 16)  // section y
	w.WriteBits(1, 8)            // local palette size
	w.WriteBits(0, 16)           // local 0 -> global 0
	w.WriteBits(1, 7)            // block count
	w.WriteBool(true)            // y delta follows
	w.WriteZigzag(y, 6)          // y offset within section
	w.WriteBool(true)            // packed xz follows
	w.WriteBits(uint32(z)<<4|uint32(x), 8)
	writeEmptyCubes(w, 63)
	return w.Bytes()
}

func TestDecodeChunkEmptyInput(t *testing.T) {
	_, err := cis.DecodeChunk(bytes.NewReader(nil), nil)
	require.ErrorIs(t, err, cis.ErrNoChunk)
}

func TestDecodeChunkBadMagic(t *testing.T) {
	_, err := cis.DecodeChunk(bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF}), nil)
	require.ErrorIs(t, err, cis.ErrBadMagic)
}

func TestDecodeChunkTruncatedHeader(t *testing.T) {
	// Magic present but the version field is cut short.
	payload := testutil.EncodeChunk(7, nil, nil, 0)[:6]
	_, err := cis.DecodeChunk(bytes.NewReader(payload), nil)
	require.ErrorIs(t, err, cis.ErrTruncated)
}

func TestDecodeChunkEmptyPaletteNoSections(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0, 16) // section count
	payload := testutil.EncodeChunk(3, nil, w.Bytes(), 9)

	rec, err := cis.DecodeChunk(bytes.NewReader(payload), nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), rec.Version)
	assert.Empty(t, rec.Blocks)
	assert.Empty(t, rec.Palette)
	assert.Equal(t, uint32(9), rec.BlockEntityCount)
}

func TestDecodeChunkMissingBlockEntityCount(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0, 16)
	payload := testutil.EncodeChunk(1, nil, w.Bytes(), 9)
	payload = payload[:len(payload)-4] // drop the trailing count entirely

	rec, err := cis.DecodeChunk(bytes.NewReader(payload), nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), rec.BlockEntityCount)
}

func TestDecodeChunkSingleBlock(t *testing.T) {
	palette := []testutil.PaletteSpec{{MappingID: 42, Facing: 2}}
	inst := singleBlockInst(t, 0, 3, 5, 7)
	payload := testutil.EncodeChunk(1, palette, inst, 0)

	res := cis.MapResolver{42: "stone_stairs"}
	rec, err := cis.DecodeChunk(bytes.NewReader(payload), res)
	require.NoError(t, err)
	require.Len(t, rec.Blocks, 1)
	assert.Equal(t, cis.BlockChange{X: 3, Y: 5, Z: 7, State: "stone_stairs[facing=north]"}, rec.Blocks[0])
}

func TestDecodeChunkUnknownMappingID(t *testing.T) {
	palette := []testutil.PaletteSpec{{MappingID: 42, Facing: 9}} // facing 9: no suffix
	inst := singleBlockInst(t, 0, 0, 0, 0)
	payload := testutil.EncodeChunk(1, palette, inst, 0)

	rec, err := cis.DecodeChunk(bytes.NewReader(payload), nil)
	require.NoError(t, err)
	require.Len(t, rec.Blocks, 1)
	assert.Equal(t, "unknown_42", rec.Blocks[0].State)
	assert.Equal(t, "unknown_42", rec.Palette[0].State)
}

func TestDecodeChunkNegativeSection(t *testing.T) {
	palette := []testutil.PaletteSpec{{MappingID: 1, Facing: 0xFF}}
	inst := singleBlockInst(t, -1, 2, 0, 4)
	payload := testutil.EncodeChunk(1, palette, inst, 0)

	rec, err := cis.DecodeChunk(bytes.NewReader(payload), cis.MapResolver{1: "dirt"})
	require.NoError(t, err)
	require.Len(t, rec.Blocks, 1)
	// Section -1 spans world Y [-16,-1).
	assert.Equal(t, int32(-16), rec.Blocks[0].Y)
	assert.Equal(t, "dirt", rec.Blocks[0].State)
}

func TestDecodeChunkShortInstructionStream(t *testing.T) {
	// Declared instruction length longer than the bytes that follow: the
	// bit reader zero-pads and the chunk still frames.
	w := bitio.NewWriter()
	w.WriteBits(0, 16)
	inst := w.Bytes()
	payload := testutil.EncodeChunk(1, nil, inst, 0)
	// Truncate mid-instruction-stream and past the trailing count.
	payload = payload[:len(payload)-5]

	rec, err := cis.DecodeChunk(bytes.NewReader(payload), nil)
	require.NoError(t, err)
	assert.Empty(t, rec.Blocks)
}
