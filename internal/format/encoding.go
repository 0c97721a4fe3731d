package format

import "encoding/binary"

// Binary encoding utilities for big-endian integers.
//
// The CIS format and its region container store every framed integer
// big-endian. The Read* helpers panic on short buffers (callers bounds-check
// first); the U* helpers return 0 when the buffer is too short, for parse
// paths that prefer lenient reads.

// ReadU16 reads a big-endian uint16 from b at off.
func ReadU16(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off : off+2])
}

// ReadU32 reads a big-endian uint32 from b at off.
func ReadU32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}

// PutU16 writes a big-endian uint16 to b at off.
func PutU16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:off+2], v)
}

// PutU32 writes a big-endian uint32 to b at off.
func PutU32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}

// U16 reads a big-endian uint16 from the start of b. Returns 0 when b is too short.
func U16(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U32 reads a big-endian uint32 from the start of b. Returns 0 when b is too short.
func U32(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}
