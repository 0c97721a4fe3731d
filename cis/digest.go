package cis

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// SlotStat summarizes one region slot: stored and inflated sizes, the
// payload digest, and decode counts. Identical payloads in different slots
// hash identically, so digests double as a cheap dedup key.
type SlotStat struct {
	X              int    `json:"x"`
	Z              int    `json:"z"`
	CompressedSize int    `json:"compressed_size"`
	PayloadSize    int    `json:"payload_size"`
	Digest         uint64 `json:"digest"`
	Blocks         int    `json:"blocks"`
	PaletteSize    int    `json:"palette_size"`
	Error          string `json:"error,omitempty"`
}

// PayloadDigest returns the xxhash64 of b.
func PayloadDigest(b []byte) uint64 { return xxhash.Sum64(b) }

// Stats inflates and decodes every present slot and reports per-slot sizes,
// payload digests, and block counts. Corrupt slots appear with their error
// string and zeroed decode fields.
func (r *Region) Stats(res Resolver) []SlotStat {
	var out []SlotStat
	it := r.Chunks(res)
	for {
		dc, err := it.Next()
		if err == io.EOF {
			return out
		}
		st := SlotStat{X: dc.X, Z: dc.Z, CompressedSize: int(r.Entry(dc.X, dc.Z).Length)}
		if dc.Err != nil {
			st.Error = dc.Err.Error()
			out = append(out, st)
			continue
		}
		if payload, err := r.Payload(dc.X, dc.Z); err == nil {
			st.PayloadSize = len(payload)
			st.Digest = PayloadDigest(payload)
		}
		st.Blocks = len(dc.Chunk.Blocks)
		st.PaletteSize = len(dc.Chunk.Palette)
		out = append(out, st)
	}
}

// UniquePayloads counts distinct payload digests among stats entries that
// decoded successfully.
func UniquePayloads(stats []SlotStat) int {
	seen := make(map[uint64]struct{}, len(stats))
	for _, st := range stats {
		if st.Error != "" {
			continue
		}
		seen[st.Digest] = struct{}{}
	}
	return len(seen)
}
