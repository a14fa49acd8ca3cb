package capture

import (
	"fmt"

	"github.com/rawpix/rawpix"
)

// frameBuffer copies one raw RGB3 frame into a typed buffer. The frame
// must be exactly width*height*3 bytes; the driver's buffer is copied so
// the buffer outlives the driver's frame queue.
func frameBuffer(frame []byte, width, height int) (*rawpix.Buffer, error) {
	want := width * height * 3
	if len(frame) != want {
		return nil, fmt.Errorf("%w: frame is %d bytes, want %d for %dx%d",
			ErrCapture, len(frame), want, width, height)
	}
	data := make([]byte, want)
	copy(data, frame)
	return rawpix.NewFrom(rawpix.U8, rawpix.RGB, width, height, data)
}
