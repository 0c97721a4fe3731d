// Package format defines the binary layout constants and primitive field
// helpers for the CIS chunk format and its region container.
package format

const (
	// Magic is the big-endian chunk magic, "CIS4".
	Magic uint32 = 0x43495334

	// PaletteEntrySize is the on-disk size of one global palette entry
	// (u16 mapping id + u8 facing code).
	PaletteEntrySize = 3

	// MaxGlobalPalette caps the global palette size. Local palettes address
	// global entries with u16 indices, so anything larger is unreachable
	// and treated as corruption.
	MaxGlobalPalette = 1 << 16
)

// Region container geometry.
const (
	// RegionSize is the side length of the chunk grid in a region file.
	RegionSize = 16

	// RegionSlots is the number of index entries in a region table.
	RegionSlots = RegionSize * RegionSize

	// RegionEntrySize is the on-disk size of one table entry
	// (u32 offset + u32 length, big-endian).
	RegionEntrySize = 8

	// RegionTableSize is the fixed size of the offset/length table at the
	// start of a region file. Inputs shorter than this are standalone
	// chunk payloads, not regions.
	RegionTableSize = RegionSlots * RegionEntrySize
)

// Section and micro-cube geometry.
const (
	// SectionHeight is the vertical extent of one section in blocks.
	SectionHeight = 16

	// SectionShift converts a section index to its base world Y.
	SectionShift = 4

	// MicroCubeDim is the side length of a micro-cube.
	MicroCubeDim = 4
)

// Instruction stream field widths, in bits.
const (
	SectionCountBits = 16
	SectionYBits     = 16
	LocalPaletteBits = 8
	GlobalIndexBits  = 16
	BlockCountBits   = 7
	YDeltaBits       = 6
	PackedXZBits     = 8
)

// SlotIndex returns the region table index for chunk-grid coordinates.
// Both must be in [0, RegionSize).
func SlotIndex(x, z int) int { return z*RegionSize + x }
