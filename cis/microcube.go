package cis

import (
	"math/bits"

	"github.com/diamondpixel/Chunkis/internal/bitio"
	"github.com/diamondpixel/Chunkis/internal/format"
)

// InvalidState marks a block whose palette reference points outside the
// global palette. Corruption inside a well-framed chunk degrades to this
// sentinel instead of failing, so a decodable chunk always yields its full
// block list.
const InvalidState = "INVALID"

// decodeMicroCube decodes one 4x4x4 sub-volume and appends its block changes
// to out.
//
// Layout: an 8-bit local palette size (0 means the cube is empty and carries
// no further fields), that many 16-bit global palette indices, a 7-bit block
// count, then per block three flagged fields: a 6-bit zigzag Y delta, an
// 8-bit packed XZ (low nibble X, high nibble Z), and a local palette id in
// ceil(log2(paletteSize)) bits. An unset flag reuses the previous value, so
// vertical columns of one state cost three flag bits per block. The running
// (y, xz, id) state is local to the cube; nothing carries across cubes.
func decodeMicroCube(br *bitio.Reader, palette []PaletteEntry, sectionY int32, out []BlockChange) []BlockChange {
	localSize := br.Read(format.LocalPaletteBits)
	if localSize == 0 {
		return out
	}

	local := make([]uint32, localSize)
	for i := range local {
		local[i] = br.Read(format.GlobalIndexBits)
	}

	blockCount := br.Read(format.BlockCountBits)

	// A single-entry palette needs zero selector bits; every block uses id 0.
	var bitsPerID uint
	if localSize > 1 {
		bitsPerID = uint(bits.Len(uint(localSize - 1)))
	}

	var lastY int32
	var lastXZ, lastID uint32
	for i := uint32(0); i < blockCount; i++ {
		if br.ReadBool() {
			lastY += br.ReadZigzag(format.YDeltaBits)
		}
		if br.ReadBool() {
			lastXZ = br.Read(format.PackedXZBits)
		}
		if localSize > 1 && br.ReadBool() {
			lastID = br.Read(bitsPerID)
		}

		// bitsPerID can address past the local palette (it rounds up to a
		// power of two), and a local entry can point past the global
		// palette. Both degrade to InvalidState.
		state := InvalidState
		if int(lastID) < len(local) {
			if gid := local[lastID]; gid < uint32(len(palette)) {
				state = palette[gid].State
			}
		}

		out = append(out, BlockChange{
			X:     int32(lastXZ & 0xF),
			Y:     sectionY<<format.SectionShift + lastY,
			Z:     int32(lastXZ >> 4),
			State: state,
		})
	}
	return out
}
