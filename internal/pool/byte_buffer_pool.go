// Package pool provides pooled byte buffers for the container encoder.
//
// Every record mutation triggers a full re-encode, so encode scratch space is
// the hottest allocation in the library. Buffers are pooled and recycled to
// keep the steady-state encode path allocation-free.
package pool

import "sync"

const (
	// EncodeBufferDefaultSize matches the record's default encoded-size bound,
	// so a fresh buffer encodes a full record without growing.
	EncodeBufferDefaultSize = 4096

	// encodeBufferMaxThreshold is the largest buffer returned to the pool.
	// Oversized buffers from pathological records are dropped instead of
	// pinning memory.
	encodeBufferMaxThreshold = 64 * 1024
)

// ByteBuffer is a minimal growable byte buffer that implements io.Writer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Write appends data to the buffer, growing it if necessary.
// It never fails; the error is always nil.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written to the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer while retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures the buffer has capacity for n more bytes.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}
	grown := make([]byte, len(bb.B), len(bb.B)+n)
	copy(grown, bb.B)
	bb.B = grown
}

var encodeBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(EncodeBufferDefaultSize)
	},
}

// GetEncodeBuffer returns an empty pooled buffer sized for one encoded record.
func GetEncodeBuffer() *ByteBuffer {
	buf, _ := encodeBufferPool.Get().(*ByteBuffer)
	buf.Reset()

	return buf
}

// PutEncodeBuffer returns a buffer to the pool for reuse.
func PutEncodeBuffer(buf *ByteBuffer) {
	if buf == nil || buf.Cap() > encodeBufferMaxThreshold {
		return
	}
	encodeBufferPool.Put(buf)
}
