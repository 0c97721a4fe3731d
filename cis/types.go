package cis

import "errors"

var (
	// ErrNoChunk indicates the input had no chunk data at all. This is the
	// normal termination signal when iterating, not a failure.
	ErrNoChunk = errors.New("cis: no chunk data")
	// ErrBadMagic indicates framed data that does not start with "CIS4".
	ErrBadMagic = errors.New("cis: bad CIS4 magic")
	// ErrTruncated indicates a chunk header field was cut short.
	ErrTruncated = errors.New("cis: truncated chunk header")
)

// PaletteEntry is one resolved global palette entry.
type PaletteEntry struct {
	MappingID uint16 `json:"mapping_id"`
	Facing    byte   `json:"facing"`
	State     string `json:"state"`
}

// BlockChange is one voxel delta within a chunk. X and Z are chunk-local
// block coordinates in [0,16); Y is absolute within the chunk's vertical
// extent (section base plus local offset, may be negative).
type BlockChange struct {
	X     int32  `json:"x"`
	Y     int32  `json:"y"`
	Z     int32  `json:"z"`
	State string `json:"state"`
}

// ChunkRecord is the decoded form of one chunk payload. Blocks are in
// encounter order, which is part of the format contract.
type ChunkRecord struct {
	Version          uint32         `json:"version"`
	Palette          []PaletteEntry `json:"palette"`
	Blocks           []BlockChange  `json:"blocks"`
	BlockEntityCount uint32         `json:"block_entity_count"`
}
