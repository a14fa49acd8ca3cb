package rawpix

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

// Image converts the buffer into a standard library image. Supported
// combinations are U8 with gray, rgb, bgr, rgba, bgra, or cmyk, and U16
// with gray. Pixel data is copied; mutating the buffer afterwards does
// not affect the returned image.
//
// Packed and YUV buffers are opaque to this layer and cannot be
// converted.
func (b *Buffer) Image() (image.Image, error) {
	rect := image.Rect(0, 0, b.width, b.height)

	if b.typ == U16 && b.color == Gray {
		// The external tool emits native-endian samples; Gray16.Pix is
		// big-endian.
		img := image.NewGray16(rect)
		for i := 0; i+1 < len(b.data); i += 2 {
			binary.BigEndian.PutUint16(img.Pix[i:], binary.NativeEndian.Uint16(b.data[i:]))
		}
		return img, nil
	}
	if b.typ != U8 {
		return nil, fmt.Errorf("cannot convert %s %s buffer to image", b.typ, b.color)
	}

	switch b.color {
	case Gray:
		img := image.NewGray(rect)
		copy(img.Pix, b.data)
		return img, nil
	case RGB, BGR:
		img := image.NewNRGBA(rect)
		r, g, bl := 0, 1, 2
		if b.color == BGR {
			r, bl = 2, 0
		}
		for i, j := 0, 0; i < len(b.data); i, j = i+3, j+4 {
			img.Pix[j+0] = b.data[i+r]
			img.Pix[j+1] = b.data[i+g]
			img.Pix[j+2] = b.data[i+bl]
			img.Pix[j+3] = 0xFF
		}
		return img, nil
	case RGBA, BGRA:
		img := image.NewNRGBA(rect)
		r, g, bl := 0, 1, 2
		if b.color == BGRA {
			r, bl = 2, 0
		}
		for i := 0; i < len(b.data); i += 4 {
			img.Pix[i+0] = b.data[i+r]
			img.Pix[i+1] = b.data[i+g]
			img.Pix[i+2] = b.data[i+bl]
			img.Pix[i+3] = b.data[i+3]
		}
		return img, nil
	case CMYK:
		img := image.NewCMYK(rect)
		copy(img.Pix, b.data)
		return img, nil
	default:
		return nil, fmt.Errorf("cannot convert %s %s buffer to image", b.typ, b.color)
	}
}

// FromImage converts a standard library image into a U8 buffer in the
// given colorspace. Supported colorspaces are gray, rgb, bgr, rgba,
// bgra, and cmyk.
func FromImage(img image.Image, cs Colorspace) (*Buffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := New(U8, cs, w, h)
	data := buf.data

	switch cs {
	case Gray, RGB, BGR, RGBA, BGRA, CMYK:
	default:
		return nil, fmt.Errorf("cannot convert image to %s buffer", cs)
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			switch cs {
			case Gray:
				data[i] = color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
				i++
			case CMYK:
				c := color.CMYKModel.Convert(img.At(x, y)).(color.CMYK)
				data[i+0], data[i+1], data[i+2], data[i+3] = c.C, c.M, c.Y, c.K
				i += 4
			default:
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				r, b := c.R, c.B
				if cs == BGR || cs == BGRA {
					r, b = b, r
				}
				data[i+0], data[i+1], data[i+2] = r, c.G, b
				i += 3
				if cs.HasAlpha() {
					data[i] = c.A
					i++
				}
			}
		}
	}
	return buf, nil
}
