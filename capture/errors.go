package capture

import "errors"

// Errors reported by the capture adapter. All returned errors wrap one
// of these sentinels.
var (
	// ErrDeviceOpen indicates the device node could not be opened.
	ErrDeviceOpen = errors.New("capture: cannot open device")

	// ErrDeviceConfig indicates the device rejected the pixel format,
	// resolution, or frame rate.
	ErrDeviceConfig = errors.New("capture: cannot configure device")

	// ErrCapture indicates the driver failed to deliver a usable frame.
	ErrCapture = errors.New("capture: cannot capture frame")
)
