package rawpix

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a color in hue/saturation/lightness space. H is in degrees
// (0-360), S and L are fractions (0-1).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// ColorFrequency is one entry of a dominant-color analysis: a quantized
// color and the percentage of pixels it covers.
type ColorFrequency struct {
	Hex        string  `json:"hex"`        // "#rrggbb"
	Percentage float64 `json:"percentage"` // 0-100
	HSL        HSL     `json:"hsl"`
}

// DominantColors returns the count most frequent colors of the buffer,
// most frequent first. The buffer must be convertible to an image (see
// Buffer.Image).
//
// Similar colors are grouped by quantizing each 8-bit channel to
// multiples of 16, so fewer than count entries may be returned for
// images with few distinct colors.
func DominantColors(b *Buffer, count int) ([]ColorFrequency, error) {
	img, err := b.Image()
	if err != nil {
		return nil, fmt.Errorf("analyzing buffer: %w", err)
	}

	bounds := img.Bounds()
	counts := make(map[uint32]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			r8 := uint32(r>>8) / 16 * 16
			g8 := uint32(g>>8) / 16 * 16
			b8 := uint32(bl>>8) / 16 * 16
			counts[r8<<16|g8<<8|b8]++
			total++
		}
	}

	out := make([]ColorFrequency, 0, len(counts))
	for key, n := range counts {
		c := colorful.Color{
			R: float64(key>>16&0xFF) / 255.0,
			G: float64(key>>8&0xFF) / 255.0,
			B: float64(key&0xFF) / 255.0,
		}
		h, s, l := c.Hsl()
		out = append(out, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / float64(total) * 100,
			HSL:        HSL{H: h, S: s, L: l},
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].Hex < out[j].Hex
	})

	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}
