package capture

import "fmt"

// rgb3 is the V4L2 FourCC for packed 24-bit RGB, the only format this
// adapter requests.
const rgb3 = "RGB3"

// fourCC packs a four-character format code into its little-endian
// numeric form, as used by the V4L2 pixel format field.
func fourCC(code string) (uint32, error) {
	if len(code) != 4 {
		return 0, fmt.Errorf("capture: illegal FourCC %q", code)
	}
	return uint32(code[0]) | uint32(code[1])<<8 | uint32(code[2])<<16 | uint32(code[3])<<24, nil
}

// fourCCString is the inverse of fourCC.
func fourCCString(pf uint32) string {
	return string([]byte{byte(pf), byte(pf >> 8), byte(pf >> 16), byte(pf >> 24)})
}
