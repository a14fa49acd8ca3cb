// Package capture grabs frames from a V4L2 webcam device as rawpix
// buffers.
//
// The device is configured at Start with the packed 24-bit RGB pixel
// format ("RGB3"), the requested resolution, and a 30 frames-per-second
// rate. Each Capture call is a single blocking request against the
// driver and yields one U8 RGB buffer sized to the resolution the driver
// actually granted.
//
// There is no internal buffering, retry, or reconnection logic. The
// device wrapper is only available on Linux; the FourCC helpers build
// everywhere.
package capture
