// Package magick reads, writes, and encodes rawpix buffers by shelling
// out to ImageMagick or GraphicsMagick.
//
// The package contains no codec logic of its own: it builds command
// lines from a buffer's pixel type, colorspace, and shape, and moves raw
// pixel bytes over the subprocess's standard streams. The wire format is
// headerless packed samples, width*height*channels*elementSize bytes.
//
// Which tool is invoked is controlled by a Magick command profile. IM
// and GM are the two built-in profiles; there is no mutable package
// default. The package-level Read, Write, Encode, and ImageShape
// functions are shorthands for the corresponding IM methods.
//
// All operations are synchronous: each spawns one external process and
// blocks until its relevant I/O completes. Cancellation and timeouts are
// the caller's business via the context.
package magick
