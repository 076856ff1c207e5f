package fspath

import "fmt"

// minAlloc is the smallest capacity a Buffer allocates.
const minAlloc = 8

// Buffer is a caller-owned growable byte buffer that path operations write
// into. The zero value is an empty buffer with no size limit.
//
// A Buffer must not be used by two calls at the same time. After any error
// the buffer still holds a valid value and may be reused or disposed.
type Buffer struct {
	buf   []byte
	limit int
}

// NewBuffer returns an empty buffer that refuses to grow beyond limit bytes.
// A limit of zero or less means unlimited.
func NewBuffer(limit int) *Buffer {
	return &Buffer{limit: limit}
}

// NewBufferString returns an unlimited buffer holding s.
func NewBufferString(s string) *Buffer {
	b := &Buffer{}
	_ = b.Set(s)
	return b
}

// Len returns the number of bytes held.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Limit returns the configured size limit (0 for none).
func (b *Buffer) Limit() int { return b.limit }

// String returns a copy of the contents.
func (b *Buffer) String() string { return string(b.buf) }

// Bytes returns the contents without copying. The slice is only valid until
// the next mutating call.
func (b *Buffer) Bytes() []byte { return b.buf }

// Dispose releases the storage. The buffer is empty and reusable afterwards.
func (b *Buffer) Dispose() { b.buf = nil }

// Truncate shortens the contents to n bytes.
func (b *Buffer) Truncate(n int) {
	if n >= 0 && n < len(b.buf) {
		b.buf = b.buf[:n]
	}
}

// grow ensures room for n more bytes, doubling the capacity as needed.
func (b *Buffer) grow(n int) error {
	need := len(b.buf) + n
	if b.limit > 0 && need > b.limit {
		return fmt.Errorf("%w: %d bytes exceeds buffer limit of %d", ErrOutOfMemory, need, b.limit)
	}
	if need <= cap(b.buf) {
		return nil
	}
	c := max(2*cap(b.buf), need, minAlloc)
	if b.limit > 0 && c > b.limit {
		c = b.limit
	}
	nb := make([]byte, len(b.buf), c)
	copy(nb, b.buf)
	b.buf = nb
	return nil
}

// Set replaces the contents with s.
func (b *Buffer) Set(s string) error {
	return b.setBytes([]byte(s))
}

// setBytes replaces the contents with p. p must not alias b.buf.
func (b *Buffer) setBytes(p []byte) error {
	if b.limit > 0 && len(p) > b.limit {
		return fmt.Errorf("%w: %d bytes exceeds buffer limit of %d", ErrOutOfMemory, len(p), b.limit)
	}
	b.buf = b.buf[:0]
	if err := b.grow(len(p)); err != nil {
		return err
	}
	b.buf = append(b.buf, p...)
	return nil
}

// Append adds s to the end of the contents.
func (b *Buffer) Append(s string) error {
	if err := b.grow(len(s)); err != nil {
		return err
	}
	b.buf = append(b.buf, s...)
	return nil
}

// AppendByte adds c to the end of the contents.
func (b *Buffer) AppendByte(c byte) error {
	if err := b.grow(1); err != nil {
		return err
	}
	b.buf = append(b.buf, c)
	return nil
}
