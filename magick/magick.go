package magick

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rawpix/rawpix"
)

// Errors reported by the codec adapter. All returned errors wrap one of
// these sentinels, so callers can classify failures with errors.Is.
var (
	// ErrInvalidShape indicates that the shape query could not be run
	// or that its output did not parse into two positive integers.
	ErrInvalidShape = errors.New("magick: invalid image shape")

	// ErrInvalidData indicates that the convert tool produced pixel
	// data whose length does not match the expected shape.
	ErrInvalidData = errors.New("magick: invalid image data")

	// ErrCommand indicates that the external tool could not be started,
	// could not be waited on, or exited with a non-zero status.
	ErrCommand = errors.New("magick: unable to execute command")

	// ErrWrite indicates that the pixel stream could not be fully
	// written to the external tool's standard input.
	ErrWrite = errors.New("magick: error writing image")
)

// Magick is a command profile: the argument-vector prefixes used to
// invoke the external tool for shape queries and conversions. Profiles
// are immutable values; pass the one you want to each call site instead
// of mutating shared state.
type Magick struct {
	identify []string
	convert  []string
}

// IM is the ImageMagick profile ("identify" / "convert").
var IM = Magick{
	identify: []string{"identify"},
	convert:  []string{"convert"},
}

// GM is the GraphicsMagick profile ("gm identify" / "gm convert").
var GM = Magick{
	identify: []string{"gm", "identify"},
	convert:  []string{"gm", "convert"},
}

// sink returns the colorspace output token, e.g. "rgb:-". The trailing
// "-" directs the tool at a standard stream.
func sink(cs rawpix.Colorspace) string {
	return cs.Name() + ":-"
}

// depthArgs returns the depth flag and, for floating-point samples, the
// quantum format define. These derive from the pixel type alone, never
// from buffer contents.
func depthArgs(typ rawpix.PixelType) []string {
	args := []string{"-depth", strconv.Itoa(typ.Bits())}
	if typ.Float() {
		args = append(args, "-define", "quantum:format=floating-point")
	}
	return args
}

// identifyArgs builds the argv for a shape query on path.
func (m Magick) identifyArgs(path string) []string {
	args := append([]string{}, m.identify...)
	return append(args, "-format", "%w %h", path)
}

// readArgs builds the argv for decoding path to raw pixels on stdout.
func (m Magick) readArgs(path string, typ rawpix.PixelType, cs rawpix.Colorspace) []string {
	args := append([]string{}, m.convert...)
	args = append(args, path)
	args = append(args, depthArgs(typ)...)
	return append(args, sink(cs))
}

// writeArgs builds the argv for encoding raw pixels from stdin into the
// given output token (a path, or "format:-" for stdout).
func (m Magick) writeArgs(img *rawpix.Buffer, out string) []string {
	w, h, _ := img.Shape()
	args := append([]string{}, m.convert...)
	args = append(args, depthArgs(img.Type())...)
	args = append(args, "-size", fmt.Sprintf("%dx%d", w, h), sink(img.Color()), out)
	return args
}

// parseShape extracts two positive integers from identify output. Any
// parse failure on either token is a single unified failure.
func parseShape(out string) (int, int, error) {
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidShape, out)
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidShape, out)
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidShape, out)
	}
	return w, h, nil
}

// command builds an exec.Cmd for the given argv with stderr captured.
func command(ctx context.Context, argv []string, stderr *bytes.Buffer) *exec.Cmd {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = stderr
	return cmd
}

// commandErr wraps a subprocess failure in sentinel, attaching any
// stderr the tool produced.
func commandErr(sentinel, err error, stderr *bytes.Buffer) error {
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%w: %v: %s", sentinel, err, msg)
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

// ImageShape queries the dimensions of the image at path using the
// profile's identify command.
func (m Magick) ImageShape(ctx context.Context, path string) (width, height int, err error) {
	if _, err := os.Stat(path); err != nil {
		return 0, 0, fmt.Errorf("magick: %w", err)
	}

	var stderr bytes.Buffer
	cmd := command(ctx, m.identifyArgs(path), &stderr)
	out, err := cmd.Output()
	if err != nil {
		return 0, 0, commandErr(ErrInvalidShape, err, &stderr)
	}
	return parseShape(string(out))
}

// Read decodes the image at path into a buffer with the given pixel
// type and colorspace. The image shape is queried first; the convert
// tool then emits raw pixels on stdout, which Read validates against
// the shape before wrapping them in a buffer.
func (m Magick) Read(ctx context.Context, path string, typ rawpix.PixelType, cs rawpix.Colorspace) (*rawpix.Buffer, error) {
	width, height, err := m.ImageShape(ctx, path)
	if err != nil {
		return nil, err
	}

	var stderr bytes.Buffer
	cmd := command(ctx, m.readArgs(path, typ, cs), &stderr)
	out, err := cmd.Output()
	if err != nil {
		return nil, commandErr(ErrCommand, err, &stderr)
	}

	if len(out)%typ.Size() != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of element size %d",
			ErrInvalidData, len(out), typ.Size())
	}
	buf, err := rawpix.NewFrom(typ, cs, width, height, out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return buf, nil
}

// Write encodes img into the file at path. The output format is chosen
// by the external tool from the path's extension.
func (m Magick) Write(ctx context.Context, path string, img *rawpix.Buffer) error {
	_, err := m.run(ctx, m.writeArgs(img, path), img.Bytes(), nil)
	return err
}

// Encode encodes img into an in-memory byte buffer in the named format
// (e.g. "png").
func (m Magick) Encode(ctx context.Context, format string, img *rawpix.Buffer) ([]byte, error) {
	var out bytes.Buffer
	if _, err := m.run(ctx, m.writeArgs(img, format+":-"), img.Bytes(), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// run spawns argv, streams input to its stdin, and waits for it to
// exit. If stdout is non-nil the process output is collected there.
// A non-zero exit status is reported as an error.
func (m Magick) run(ctx context.Context, argv []string, input []byte, stdout *bytes.Buffer) (int64, error) {
	var stderr bytes.Buffer
	cmd := command(ctx, argv, &stderr)
	if stdout != nil {
		cmd.Stdout = stdout
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCommand, err)
	}
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCommand, err)
	}

	n, werr := stdin.Write(input)
	cerr := stdin.Close()

	if err := cmd.Wait(); err != nil {
		return int64(n), commandErr(ErrCommand, err, &stderr)
	}
	if werr != nil {
		return int64(n), fmt.Errorf("%w: %v", ErrWrite, werr)
	}
	if cerr != nil {
		return int64(n), fmt.Errorf("%w: %v", ErrWrite, cerr)
	}
	return int64(n), nil
}

// ImageShape queries image dimensions using the ImageMagick profile.
func ImageShape(ctx context.Context, path string) (int, int, error) {
	return IM.ImageShape(ctx, path)
}

// Read decodes an image using the ImageMagick profile.
func Read(ctx context.Context, path string, typ rawpix.PixelType, cs rawpix.Colorspace) (*rawpix.Buffer, error) {
	return IM.Read(ctx, path, typ, cs)
}

// Write encodes a buffer to a file using the ImageMagick profile.
func Write(ctx context.Context, path string, img *rawpix.Buffer) error {
	return IM.Write(ctx, path, img)
}

// Encode encodes a buffer to memory using the ImageMagick profile.
func Encode(ctx context.Context, format string, img *rawpix.Buffer) ([]byte, error) {
	return IM.Encode(ctx, format, img)
}
