package marrow

import "encoding/binary"

// ReadCursor is the sequential, seekable reader a codec consumes over one
// row's column bytes. Implementations are not thread-safe; a cursor belongs
// to a single logical owner at a time.
type ReadCursor interface {
	// Pos returns the current absolute read position.
	Pos() int
	// Seek moves the read position to an absolute offset previously
	// obtained from Pos.
	Seek(pos int)
	// Skip advances the read position by n bytes.
	Skip(n int)
	// ReadByte consumes and returns one byte.
	ReadByte() byte
	// ReadUint32 consumes four bytes as a little-endian unsigned integer,
	// the binary protocol's integer layout.
	ReadUint32() uint32
	// ReadString consumes n bytes and returns them as a string.
	ReadString(n int) string
}

// WriteCursor is the sequential writer a codec appends wire bytes to.
type WriteCursor interface {
	WriteByte(b byte)
	WriteASCII(s string)
	WriteUint32(v uint32)
}

// Buffer is an in-memory ReadCursor over a row buffer. The zero value is an
// empty buffer; use NewBuffer to wrap existing row bytes.
type Buffer struct {
	data []byte
	pos  int
}

// NewBuffer wraps data in a read cursor positioned at offset 0. The buffer
// does not copy data; the caller must keep it alive for the cursor's lifetime.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

func (b *Buffer) Pos() int {
	return b.pos
}

func (b *Buffer) Seek(pos int) {
	b.pos = pos
}

func (b *Buffer) Skip(n int) {
	b.pos += n
}

func (b *Buffer) ReadByte() byte {
	c := b.data[b.pos]
	b.pos++
	return c
}

func (b *Buffer) ReadUint32() uint32 {
	v := binary.LittleEndian.Uint32(b.data[b.pos:])
	b.pos += 4
	return v
}

func (b *Buffer) ReadString(n int) string {
	s := string(b.data[b.pos : b.pos+n])
	b.pos += n
	return s
}

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// Writer is an append-only in-memory WriteCursor.
type Writer struct {
	buf []byte
}

func (w *Writer) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *Writer) WriteASCII(s string) {
	w.buf = append(w.buf, s...)
}

func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Bytes returns the accumulated wire bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}
