package video

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// stubFFmpeg installs a fake ffmpeg that emits the given bytes on
// stdout, standing in for the png image2pipe stream.
func stubFFmpeg(t *testing.T, stream []byte) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools require a POSIX shell")
	}

	dir := t.TempDir()
	data := filepath.Join(dir, "stream.bin")
	if err := os.WriteFile(data, stream, 0o644); err != nil {
		t.Fatal(err)
	}
	script := "#!/bin/sh\ncat \"$RAWPIX_TEST_STREAM\"\n"
	if err := os.WriteFile(filepath.Join(dir, "ffmpeg"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RAWPIX_TEST_STREAM", data)
	t.Setenv("PATH", dir+string(os.PathListSeparator)+"/usr/bin"+string(os.PathListSeparator)+"/bin")
}

// pngFrame encodes a solid-color image as PNG.
func pngFrame(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractFrames(t *testing.T) {
	var stream []byte
	stream = append(stream, pngFrame(t, 4, 3, color.NRGBA{255, 0, 0, 255})...)
	stream = append(stream, pngFrame(t, 4, 3, color.NRGBA{0, 255, 0, 255})...)
	stubFFmpeg(t, stream)

	frames, err := ExtractFrames(context.Background(), "in.mp4", 1, 0)
	if err != nil {
		t.Fatalf("ExtractFrames failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}

	for i, frame := range frames {
		w, h, c := frame.Shape()
		if w != 4 || h != 3 || c != 3 {
			t.Errorf("frame %d: shape (%d,%d,%d), want (4,3,3)", i, w, h, c)
		}
	}
	if px := frames[0].Bytes()[:3]; !bytes.Equal(px, []byte{255, 0, 0}) {
		t.Errorf("frame 0 first pixel: got %v, want red", px)
	}
	if px := frames[1].Bytes()[:3]; !bytes.Equal(px, []byte{0, 255, 0}) {
		t.Errorf("frame 1 first pixel: got %v, want green", px)
	}
}

func TestExtractFramesEmpty(t *testing.T) {
	stubFFmpeg(t, nil)

	_, err := ExtractFrames(context.Background(), "in.mp4", 1, 0)
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("got %v, want ErrNoFrames", err)
	}
}
