package cis

import (
	"strconv"

	"github.com/diamondpixel/Chunkis/internal/format"
)

// Resolver looks up the human-readable name for a numeric mapping id. It is
// supplied by the caller as a capability; the decoder never mutates it and a
// nil Resolver is valid (every id resolves to its unknown_<id> fallback).
type Resolver interface {
	Name(id uint16) (string, bool)
}

// MapResolver is a Resolver backed by a plain map.
type MapResolver map[uint16]string

// Name implements Resolver.
func (m MapResolver) Name(id uint16) (string, bool) {
	name, ok := m[id]
	return name, ok
}

// ResolveState builds the display string for a palette entry: the resolved
// name, suffixed with [facing=<dir>] when the facing code names one of the
// six directions. Unknown ids become "unknown_<id>"; unknown facing codes
// carry no suffix.
func ResolveState(res Resolver, id uint16, facing byte) string {
	name := "unknown_" + strconv.Itoa(int(id))
	if res != nil {
		if n, ok := res.Name(id); ok {
			name = n
		}
	}
	if dir, ok := format.FacingString(facing); ok {
		name += "[facing=" + dir + "]"
	}
	return name
}
