// Package rawpix provides typed raw image buffers: a flat pixel store
// tagged with a pixel element type, a colorspace, and a width and height.
//
// The package itself contains no codec logic. Decoding, encoding, and
// frame capture are handled by thin adapters in the subpackages, which
// delegate the actual work to external tools and drivers:
//
//   - magick shells out to ImageMagick or GraphicsMagick for reading,
//     writing, and in-memory encoding of buffers.
//   - capture wraps a V4L2 webcam device and produces one RGB buffer
//     per captured frame (Linux only).
//   - video extracts frames from video files via ffmpeg.
//
// # Buffers
//
// A Buffer is a triple (width, height, data) tagged with a PixelType and
// a Colorspace. The backing store is a plain byte slice; the element view
// is logical, derived from the pixel type's size. The sizing invariant
//
//	len(data) == width * height * channels * elementSize
//
// is enforced at construction. Buffers sourced from external processes
// are always filled by a checked copy, never by reinterpreting foreign
// allocations.
//
// # Colorspaces
//
// Colorspaces form a closed set known at compile time. The "packed"
// variants deliberately report a single logical channel even though they
// describe multi-byte packed pixels: packed formats are opaque blobs to
// this layer and are only ever moved, never inspected.
package rawpix
