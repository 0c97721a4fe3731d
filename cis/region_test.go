package cis_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamondpixel/Chunkis/cis"
	"github.com/diamondpixel/Chunkis/internal/format"
	"github.com/diamondpixel/Chunkis/internal/testutil"
)

func singleBlockChunk(t *testing.T) []byte {
	t.Helper()
	palette := []testutil.PaletteSpec{{MappingID: 42, Facing: 2}}
	return testutil.EncodeChunk(1, palette, singleBlockInst(t, 0, 3, 5, 7), 0)
}

func stairsResolver() cis.MapResolver { return cis.MapResolver{42: "stone_stairs"} }

func TestRegionSingleSlot(t *testing.T) {
	data := testutil.BuildRegion(map[int][]byte{0: singleBlockChunk(t)})
	r := cis.OpenBytes(data)
	require.False(t, r.Standalone())

	decoded := r.DecodeAll(stairsResolver())
	require.Len(t, decoded, 1)
	assert.Equal(t, 0, decoded[0].X)
	assert.Equal(t, 0, decoded[0].Z)
	require.Len(t, decoded[0].Chunk.Blocks, 1)
	assert.Equal(t,
		cis.BlockChange{X: 3, Y: 5, Z: 7, State: "stone_stairs[facing=north]"},
		decoded[0].Chunk.Blocks[0])
}

func TestRegionSlotAddressing(t *testing.T) {
	// Slot index is z*16+x.
	idx := format.SlotIndex(3, 2)
	data := testutil.BuildRegion(map[int][]byte{idx: singleBlockChunk(t)})
	r := cis.OpenBytes(data)

	require.True(t, r.Entry(3, 2).Present())
	assert.False(t, r.Entry(2, 3).Present())

	decoded := r.DecodeAll(stairsResolver())
	require.Len(t, decoded, 1)
	assert.Equal(t, 3, decoded[0].X)
	assert.Equal(t, 2, decoded[0].Z)
}

func TestRegionCorruptSlotIsolation(t *testing.T) {
	chunk := singleBlockChunk(t)
	slots := make(map[int][]byte, format.RegionSlots)
	for i := 0; i < format.RegionSlots; i++ {
		slots[i] = testutil.Deflate(chunk)
	}
	slots[format.SlotIndex(7, 7)] = []byte("definitely not zlib data")
	data := testutil.BuildRegionRaw(slots)

	r := cis.OpenBytes(data)
	var ok, failed int
	it := r.Chunks(stairsResolver())
	for {
		dc, err := it.Next()
		if err == io.EOF {
			break
		}
		if dc.Err != nil {
			failed++
			assert.Equal(t, 7, dc.X)
			assert.Equal(t, 7, dc.Z)
			continue
		}
		ok++
	}
	assert.Equal(t, format.RegionSlots-1, ok)
	assert.Equal(t, 1, failed)
	assert.Len(t, r.DecodeAll(stairsResolver()), format.RegionSlots-1)
}

func TestRegionSlotPastEndOfFile(t *testing.T) {
	data := testutil.BuildRegion(map[int][]byte{0: singleBlockChunk(t)})
	// Inflate the recorded length far past the end of the file.
	format.PutU32(data, 4, uint32(len(data)))

	r := cis.OpenBytes(data)
	it := r.Chunks(stairsResolver())
	dc, err := it.Next()
	require.NoError(t, err)
	require.Error(t, dc.Err)

	_, err = it.Next()
	assert.Equal(t, io.EOF, err)
}

func TestStandaloneRawChunk(t *testing.T) {
	chunk := singleBlockChunk(t)
	require.Less(t, len(chunk), format.RegionTableSize)

	r := cis.OpenBytes(chunk)
	require.True(t, r.Standalone())

	decoded := r.DecodeAll(stairsResolver())
	require.Len(t, decoded, 1)
	assert.Equal(t, "stone_stairs[facing=north]", decoded[0].Chunk.Blocks[0].State)
}

func TestStandaloneZlibChunk(t *testing.T) {
	r := cis.OpenBytes(testutil.Deflate(singleBlockChunk(t)))
	require.True(t, r.Standalone())

	decoded := r.DecodeAll(stairsResolver())
	require.Len(t, decoded, 1)
	require.Len(t, decoded[0].Chunk.Blocks, 1)
}

func TestStandaloneEmptyInput(t *testing.T) {
	r := cis.OpenBytes(nil)
	it := r.Chunks(nil)
	_, err := it.Next()
	assert.Equal(t, io.EOF, err)
}

func TestParseRegionName(t *testing.T) {
	rx, rz, ok := cis.ParseRegionName("/world/edits/r.-2.13.cis")
	require.True(t, ok)
	assert.Equal(t, -2, rx)
	assert.Equal(t, 13, rz)

	_, _, ok = cis.ParseRegionName("edits.cis")
	assert.False(t, ok)
	_, _, ok = cis.ParseRegionName("r.one.two.cis")
	assert.False(t, ok)
}
