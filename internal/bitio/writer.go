package bitio

// Writer builds MSB-first bit streams. It exists as test tooling: the
// decoder's round-trip tests and fixture builders need a reference encoder,
// but the library exposes no encode path.
type Writer struct {
	buf []byte
	cur byte
	n   uint // bits pending in cur, in [0,8)
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

// WriteBits appends the low n bits of v (0 <= n <= 32), MSB-first.
func (w *Writer) WriteBits(v uint32, n uint) {
	for i := n; i > 0; i-- {
		w.cur = w.cur<<1 | byte(v>>(i-1)&1)
		w.n++
		if w.n == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur = 0
			w.n = 0
		}
	}
}

// WriteBool appends a single flag bit.
func (w *Writer) WriteBool(b bool) {
	if b {
		w.WriteBits(1, 1)
	} else {
		w.WriteBits(0, 1)
	}
}

// WriteZigzag appends v zigzag-encoded in n bits.
func (w *Writer) WriteZigzag(v int32, n uint) {
	w.WriteBits(uint32(v<<1)^uint32(v>>31), n)
}

// Bytes returns the stream, padding the final partial byte with zero bits.
// The Writer must not be used after Bytes.
func (w *Writer) Bytes() []byte {
	if w.n > 0 {
		w.buf = append(w.buf, w.cur<<(8-w.n))
		w.cur = 0
		w.n = 0
	}
	return w.buf
}
