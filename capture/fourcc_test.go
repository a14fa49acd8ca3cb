package capture

import "testing"

func TestFourCC(t *testing.T) {
	pf, err := fourCC(rgb3)
	if err != nil {
		t.Fatalf("fourCC failed: %v", err)
	}
	want := uint32('R') | uint32('G')<<8 | uint32('B')<<16 | uint32('3')<<24
	if pf != want {
		t.Errorf("got %#x, want %#x", pf, want)
	}
	if got := fourCCString(pf); got != rgb3 {
		t.Errorf("round trip: got %q, want %q", got, rgb3)
	}
}

func TestFourCCIllegal(t *testing.T) {
	for _, code := range []string{"", "RGB", "RGB32"} {
		if _, err := fourCC(code); err == nil {
			t.Errorf("fourCC(%q): expected error, got nil", code)
		}
	}
}
