// Package bitio reads and writes MSB-first bit streams.
//
// The CIS instruction stream packs fields most-significant-bit first across
// byte boundaries. The Reader is deliberately lenient at end of buffer:
// historical encoders pad the tail of the stream with zero bits, so a read
// that runs past the end yields the in-range bits left-shifted with zero
// low-order bits and never fails.
package bitio

// Reader extracts unsigned and zigzag-coded integers from a byte buffer.
// The cursor only moves forward; no bit is ever read twice.
type Reader struct {
	data    []byte
	byteOff int
	bitOff  uint // bits already consumed from data[byteOff], in [0,8)
}

// NewReader returns a Reader positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Read consumes n bits (0 <= n <= 32) MSB-first and returns them as the
// low-order bits of the result. n = 0 returns 0 without advancing. Past the
// end of the buffer the missing low-order bits are zero.
func (r *Reader) Read(n uint) uint32 {
	var v uint32
	for n > 0 {
		if r.byteOff >= len(r.data) {
			return v << n
		}
		remaining := 8 - r.bitOff
		take := remaining
		if n < take {
			take = n
		}
		chunk := (r.data[r.byteOff] >> (remaining - take)) & byte((1<<take)-1)
		v = v<<take | uint32(chunk)
		r.bitOff += take
		n -= take
		if r.bitOff == 8 {
			r.byteOff++
			r.bitOff = 0
		}
	}
	return v
}

// ReadBool consumes one bit.
func (r *Reader) ReadBool() bool {
	return r.Read(1) == 1
}

// ReadZigzag consumes n bits and decodes them as a zigzag-coded signed
// integer: unsigned 0,1,2,3,4,... maps to signed 0,-1,1,-2,2,...
func (r *Reader) ReadZigzag(n uint) int32 {
	v := r.Read(n)
	return int32(v>>1) ^ -int32(v&1)
}

// Remaining reports how many unread bits are left in the buffer.
func (r *Reader) Remaining() int {
	return (len(r.data)-r.byteOff)*8 - int(r.bitOff)
}
