package rawpix

import "fmt"

// PixelType identifies the numeric representation of one channel sample:
// its byte width and whether it is floating-point. Like Colorspace, the
// set is closed. The zero value is U8.
type PixelType int

const (
	// U8 is an 8-bit unsigned integer sample.
	U8 PixelType = iota

	// U16 is a 16-bit unsigned integer sample.
	U16

	// U32 is a 32-bit unsigned integer sample.
	U32

	// F32 is a 32-bit floating-point sample.
	F32

	// F64 is a 64-bit floating-point sample.
	F64
)

var pixelTypeInfo = [...]struct {
	name  string
	size  int
	float bool
}{
	U8:  {"u8", 1, false},
	U16: {"u16", 2, false},
	U32: {"u32", 4, false},
	F32: {"f32", 4, true},
	F64: {"f64", 8, true},
}

// Size returns the sample width in bytes.
func (t PixelType) Size() int {
	return pixelTypeInfo[t].size
}

// Bits returns the sample width in bits, as used for the external tool's
// -depth flag.
func (t PixelType) Bits() int {
	return t.Size() * 8
}

// Float reports whether the sample is floating-point. Floating-point
// types require the external tool's floating-point quantum format.
func (t PixelType) Float() bool {
	return pixelTypeInfo[t].float
}

// Name returns the short identifier of the pixel type, e.g. "u8".
func (t PixelType) Name() string {
	return pixelTypeInfo[t].name
}

// String implements fmt.Stringer.
func (t PixelType) String() string {
	return t.Name()
}

// PixelTypes returns all pixel types in declaration order.
func PixelTypes() []PixelType {
	return []PixelType{U8, U16, U32, F32, F64}
}

// ParsePixelType maps a pixel type name (as returned by Name) back to
// its value. It returns an error for unknown names.
func ParsePixelType(name string) (PixelType, error) {
	for _, t := range PixelTypes() {
		if t.Name() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown pixel type %q", name)
}
