package rawpix

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"
)

func TestBufferImageRGB(t *testing.T) {
	// 2x1: red then blue
	buf, err := NewFrom(U8, RGB, 2, 1, []byte{255, 0, 0, 0, 0, 255})
	if err != nil {
		t.Fatalf("NewFrom failed: %v", err)
	}

	img, err := buf.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	want := []color.NRGBA{{255, 0, 0, 255}, {0, 0, 255, 255}}
	for x, w := range want {
		got := img.(*image.NRGBA).NRGBAAt(x, 0)
		if got != w {
			t.Errorf("pixel %d: got %v, want %v", x, got, w)
		}
	}
}

func TestBufferImageBGRSwizzle(t *testing.T) {
	// BGR bytes for a pure red pixel
	buf, err := NewFrom(U8, BGR, 1, 1, []byte{0, 0, 255})
	if err != nil {
		t.Fatalf("NewFrom failed: %v", err)
	}

	img, err := buf.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	got := img.(*image.NRGBA).NRGBAAt(0, 0)
	if (got != color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("got %v, want red", got)
	}
}

func TestBufferImageGray16ByteOrder(t *testing.T) {
	// Samples arrive native-endian from the external tool; Gray16 must
	// report the same values regardless of host byte order.
	want := []uint16{0x1234, 0x0000, 0xFFFF, 0xBEEF}
	data := make([]byte, 2*len(want))
	for i, v := range want {
		binary.NativeEndian.PutUint16(data[2*i:], v)
	}

	buf, err := NewFrom(U16, Gray, 2, 2, data)
	if err != nil {
		t.Fatalf("NewFrom failed: %v", err)
	}
	img, err := buf.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	gray := img.(*image.Gray16)
	for i, v := range want {
		if got := gray.Gray16At(i%2, i/2).Y; got != v {
			t.Errorf("sample %d: got %#04x, want %#04x", i, got, v)
		}
	}
}

func TestBufferImageUnsupported(t *testing.T) {
	tests := []struct {
		name string
		typ  PixelType
		cs   Colorspace
	}{
		{"yuv", U8, YUV},
		{"packed", U8, RGBPacked},
		{"float rgb", F32, RGB},
		{"u16 rgba", U16, RGBA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.typ, tt.cs, 2, 2).Image(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 7)
	}
	// Force full opacity so RGB round-trips exactly
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}

	for _, cs := range []Colorspace{RGB, BGR, RGBA, BGRA} {
		t.Run(cs.Name(), func(t *testing.T) {
			buf, err := FromImage(src, cs)
			if err != nil {
				t.Fatalf("FromImage failed: %v", err)
			}
			w, h, c := buf.Shape()
			if w != 3 || h != 2 || c != cs.Channels() {
				t.Fatalf("Shape: got (%d,%d,%d)", w, h, c)
			}

			back, err := buf.Image()
			if err != nil {
				t.Fatalf("Image failed: %v", err)
			}
			if !bytes.Equal(back.(*image.NRGBA).Pix, src.Pix) {
				t.Errorf("%s round trip lost pixel data", cs)
			}
		})
	}
}

func TestFromImageGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	copy(src.Pix, []byte{0, 85, 170, 255})

	buf, err := FromImage(src, Gray)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), src.Pix) {
		t.Errorf("got %v, want %v", buf.Bytes(), src.Pix)
	}
}

func TestFromImageUnsupported(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if _, err := FromImage(src, YUV); err == nil {
		t.Error("expected error for yuv target, got nil")
	}
}
