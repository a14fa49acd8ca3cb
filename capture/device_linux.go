//go:build linux

package capture

import (
	"fmt"

	"github.com/blackjack/webcam"

	"github.com/rawpix/rawpix"
)

// frameRate is the fixed capture rate, the 1/30 second frame interval.
const frameRate = 30

// waitTimeout is the per-poll timeout in seconds while blocking for a
// frame. Capture keeps polling, so this only bounds each driver wait.
const waitTimeout = 5

// Device is an open V4L2 capture device. It is not safe for concurrent
// use; Capture is a single blocking request-response against the driver.
type Device struct {
	cam    *webcam.Webcam
	width  int
	height int
}

// Open opens the V4L2 device node at path (e.g. "/dev/video0") for
// capturing width x height frames. The configuration is applied by
// Start, not here.
func Open(path string, width, height int) (*Device, error) {
	cam, err := webcam.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeviceOpen, path, err)
	}
	return &Device{cam: cam, width: width, height: height}, nil
}

// Start negotiates the RGB3 pixel format and the requested resolution,
// fixes the frame rate, and begins streaming. The driver may grant a
// different resolution than requested; subsequent captures use the
// granted one.
func (d *Device) Start() error {
	pf, err := fourCC(rgb3)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceConfig, err)
	}

	got, w, h, err := d.cam.SetImageFormat(webcam.PixelFormat(pf), uint32(d.width), uint32(d.height))
	if err != nil {
		return fmt.Errorf("%w: set format: %v", ErrDeviceConfig, err)
	}
	if uint32(got) != pf {
		return fmt.Errorf("%w: device granted format %q, want %q",
			ErrDeviceConfig, fourCCString(uint32(got)), rgb3)
	}
	d.width, d.height = int(w), int(h)

	if err := d.cam.SetFramerate(frameRate); err != nil {
		return fmt.Errorf("%w: set frame rate: %v", ErrDeviceConfig, err)
	}
	if err := d.cam.StartStreaming(); err != nil {
		return fmt.Errorf("%w: start streaming: %v", ErrDeviceConfig, err)
	}
	return nil
}

// Shape returns the granted frame width, height, and channel count.
// Before Start it reflects the requested resolution.
func (d *Device) Shape() (width, height, channels int) {
	return d.width, d.height, rawpix.RGB.Channels()
}

// Capture blocks until the driver delivers one frame and returns it as
// a U8 RGB buffer of the granted resolution.
func (d *Device) Capture() (*rawpix.Buffer, error) {
	for {
		err := d.cam.WaitForFrame(waitTimeout)
		switch err.(type) {
		case nil:
		case *webcam.Timeout:
			continue
		default:
			return nil, fmt.Errorf("%w: %v", ErrCapture, err)
		}

		frame, err := d.cam.ReadFrame()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCapture, err)
		}
		if len(frame) == 0 {
			continue
		}
		return frameBuffer(frame, d.width, d.height)
	}
}

// Close stops streaming and releases the device handle.
func (d *Device) Close() error {
	if err := d.cam.StopStreaming(); err != nil {
		d.cam.Close()
		return fmt.Errorf("%w: stop streaming: %v", ErrCapture, err)
	}
	return d.cam.Close()
}
