package rawpix

import "fmt"

// Colorspace identifies a fixed channel layout and interpretation.
//
// The set of colorspaces is closed: the nine values below are the only
// ones that exist, and their channel counts and alpha flags never change.
// The zero value is Gray.
type Colorspace int

const (
	// Gray is a single luminance channel.
	Gray Colorspace = iota

	// RGB is red, green, blue.
	RGB

	// BGR is blue, green, red.
	BGR

	// RGBPacked is an RGB pixel packed into a single opaque element.
	RGBPacked

	// RGBA is red, green, blue with a trailing alpha channel.
	RGBA

	// BGRA is blue, green, red with a trailing alpha channel.
	BGRA

	// RGBAPacked is an RGBA pixel packed into a single opaque element.
	RGBAPacked

	// CMYK is cyan, magenta, yellow, key.
	CMYK

	// YUV is luma plus two chroma channels.
	YUV
)

// colorspaceInfo is the static descriptor table backing the Colorspace
// methods. Packed variants declare one logical channel: their multi-byte
// pixel encoding is opaque to this layer.
var colorspaceInfo = [...]struct {
	name     string
	channels int
	hasAlpha bool
}{
	Gray:       {"gray", 1, false},
	RGB:        {"rgb", 3, false},
	BGR:        {"bgr", 3, false},
	RGBPacked:  {"rgb_packed", 1, false},
	RGBA:       {"rgba", 4, true},
	BGRA:       {"bgra", 4, true},
	RGBAPacked: {"rgba_packed", 1, false},
	CMYK:       {"cmyk", 4, false},
	YUV:        {"yuv", 3, false},
}

// Name returns the short identifier of the colorspace, e.g. "rgb".
// This is the token the magick adapter uses on the command line.
func (c Colorspace) Name() string {
	return colorspaceInfo[c].name
}

// Channels returns the number of logical channels per pixel. It is fixed
// per colorspace and never zero.
func (c Colorspace) Channels() int {
	return colorspaceInfo[c].channels
}

// HasAlpha reports whether the last channel is an alpha channel.
func (c Colorspace) HasAlpha() bool {
	return colorspaceInfo[c].hasAlpha
}

// String implements fmt.Stringer.
func (c Colorspace) String() string {
	return c.Name()
}

// Colorspaces returns all colorspaces in declaration order.
func Colorspaces() []Colorspace {
	return []Colorspace{Gray, RGB, BGR, RGBPacked, RGBA, BGRA, RGBAPacked, CMYK, YUV}
}

// ParseColorspace maps a colorspace name (as returned by Name) back to
// its value. It returns an error for unknown names.
func ParseColorspace(name string) (Colorspace, error) {
	for _, c := range Colorspaces() {
		if c.Name() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown colorspace %q", name)
}
