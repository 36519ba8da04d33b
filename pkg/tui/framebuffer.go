// ABOUTME: Pooled byte buffer holding one complete frame; recycled via sync.Pool
// ABOUTME: The compositor appends escape sequences and content here, then flushes it in one write

package tui

import "sync"

const frameBufferCap = 4096

var framePool = sync.Pool{
	New: func() any {
		return &FrameBuffer{
			buf: make([]byte, 0, frameBufferCap),
		}
	},
}

// AcquireFrame gets an empty FrameBuffer from the pool.
func AcquireFrame() *FrameBuffer {
	f := framePool.Get().(*FrameBuffer)
	f.Reset()
	return f
}

// ReleaseFrame returns a FrameBuffer to the pool.
func ReleaseFrame(f *FrameBuffer) {
	if f == nil {
		return
	}
	f.Reset()
	framePool.Put(f)
}

// FrameBuffer is a growable byte sequence accumulated during one render pass.
type FrameBuffer struct {
	buf []byte
}

// Write appends p. It never fails.
func (f *FrameBuffer) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

// WriteString appends s.
func (f *FrameBuffer) WriteString(s string) {
	f.buf = append(f.buf, s...)
}

// WriteByte appends c.
func (f *FrameBuffer) WriteByte(c byte) error {
	f.buf = append(f.buf, c)
	return nil
}

// Bytes returns the accumulated frame. It aliases the buffer until the next Reset.
func (f *FrameBuffer) Bytes() []byte {
	return f.buf
}

// Reset clears the buffer for reuse without deallocating.
func (f *FrameBuffer) Reset() {
	f.buf = f.buf[:0]
}

// Len returns the number of buffered bytes.
func (f *FrameBuffer) Len() int {
	return len(f.buf)
}
