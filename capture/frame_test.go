package capture

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameBuffer(t *testing.T) {
	raw := make([]byte, 2*2*3)
	for i := range raw {
		raw[i] = byte(i)
	}

	buf, err := frameBuffer(raw, 2, 2)
	if err != nil {
		t.Fatalf("frameBuffer failed: %v", err)
	}

	w, h, c := buf.Shape()
	if w != 2 || h != 2 || c != 3 {
		t.Errorf("Shape: got (%d,%d,%d), want (2,2,3)", w, h, c)
	}
	if !bytes.Equal(buf.Bytes(), raw) {
		t.Errorf("pixel data: got %v, want %v", buf.Bytes(), raw)
	}

	// The driver may recycle its frame memory; the buffer must not alias it.
	raw[0] = 0xFF
	if buf.Bytes()[0] == 0xFF {
		t.Error("buffer aliases the driver frame")
	}
}

func TestFrameBufferSizeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		bytes int
		w, h  int
	}{
		{"short frame", 11, 2, 2},
		{"long frame", 13, 2, 2},
		{"empty frame", 0, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := frameBuffer(make([]byte, tt.bytes), tt.w, tt.h)
			if !errors.Is(err, ErrCapture) {
				t.Errorf("got %v, want ErrCapture", err)
			}
		})
	}
}
