package pixgeom

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"000", color.NRGBA{0, 0, 0, 255}},
		{"#ffb400", color.NRGBA{255, 180, 0, 255}},
		{"#12121480", color.NRGBA{18, 18, 20, 128}},
		{"bogus", color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in).Color(); got != tt.want {
				t.Errorf("Hex(%q).Color() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromColorRoundtrip(t *testing.T) {
	want := color.NRGBA{240, 240, 240, 255}
	if got := FromColor(want).Color(); got != want {
		t.Errorf("FromColor roundtrip = %v, want %v", got, want)
	}
}

func TestParseHex(t *testing.T) {
	if _, err := ParseHex("#12345"); err == nil {
		t.Error("ParseHex(#12345) should fail on length")
	}
	if _, err := ParseHex("#12345g"); err == nil {
		t.Error("ParseHex(#12345g) should fail on digit")
	}
	c, err := ParseHex("#78A0FF")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if got := c.String(); got != "#78a0ff" {
		t.Errorf("String() = %q, want #78a0ff", got)
	}
	if got := Hex("#12121480").String(); got != "#12121480" {
		t.Errorf("String() = %q, want #12121480", got)
	}
}
