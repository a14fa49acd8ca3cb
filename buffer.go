package rawpix

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when supplied pixel data does not match
// the declared buffer shape.
var ErrShapeMismatch = errors.New("rawpix: data length does not match buffer shape")

// Buffer is a typed raw image buffer: a flat pixel store tagged with a
// pixel element type, a colorspace, and a width and height.
//
// The backing store always satisfies
//
//	len(data) == width * height * channels * elementSize
//
// which NewFrom enforces and New establishes by construction. Buffer owns
// its backing bytes exclusively; callers must not retain slices passed to
// NewFrom.
type Buffer struct {
	typ    PixelType
	color  Colorspace
	width  int
	height int
	data   []byte
}

// New allocates a zero-filled buffer of the given shape.
func New(typ PixelType, color Colorspace, width, height int) *Buffer {
	return &Buffer{
		typ:    typ,
		color:  color,
		width:  width,
		height: height,
		data:   make([]byte, width*height*color.Channels()*typ.Size()),
	}
}

// NewFrom constructs a buffer over the given backing bytes. The byte
// length must equal width*height*channels*elementSize; otherwise NewFrom
// fails with an error wrapping ErrShapeMismatch.
func NewFrom(typ PixelType, color Colorspace, width, height int, data []byte) (*Buffer, error) {
	want := width * height * color.Channels() * typ.Size()
	if len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d %s %s",
			ErrShapeMismatch, len(data), want, width, height, color, typ)
	}
	return &Buffer{
		typ:    typ,
		color:  color,
		width:  width,
		height: height,
		data:   data,
	}, nil
}

// Shape returns the width, height, and channel count of the buffer.
func (b *Buffer) Shape() (width, height, channels int) {
	return b.width, b.height, b.color.Channels()
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Type returns the pixel element type.
func (b *Buffer) Type() PixelType { return b.typ }

// Color returns the colorspace tag.
func (b *Buffer) Color() Colorspace { return b.color }

// Len returns the number of pixel elements in the buffer
// (width * height * channels).
func (b *Buffer) Len() int {
	return len(b.data) / b.typ.Size()
}

// Bytes returns the raw backing bytes of the buffer, suitable for
// transmission to an external process. The returned slice aliases the
// buffer's storage; it is not a copy.
func (b *Buffer) Bytes() []byte {
	return b.data
}
