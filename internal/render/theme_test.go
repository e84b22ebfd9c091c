package render

import (
	"image/color"
	"testing"
)

func TestThemeByName(t *testing.T) {
	theme, err := ThemeByName("brown")
	if err != nil {
		t.Fatalf("brown: %v", err)
	}
	if theme.Light != (color.NRGBA{R: 233, G: 207, B: 163, A: 255}) {
		t.Fatalf("brown light = %+v", theme.Light)
	}
	if theme.Dark != (color.NRGBA{R: 187, G: 136, B: 96, A: 255}) {
		t.Fatalf("brown dark = %+v", theme.Dark)
	}
	if theme.Highlight.A == 255 {
		t.Fatal("highlight should carry alpha for overlay blending")
	}

	if _, err := ThemeByName("plaid"); err == nil {
		t.Fatal("expected error for unknown theme")
	}

	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("theme names = %v", names)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ffe478")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (color.NRGBA{R: 0xff, G: 0xe4, B: 0x78, A: 0xff}) {
		t.Fatalf("got %+v", c)
	}

	c, err = ParseHexColor("#ffe4788c")
	if err != nil {
		t.Fatalf("parse with alpha: %v", err)
	}
	if c.A != 0x8c || c.R != 0xff {
		t.Fatalf("got %+v", c)
	}

	for _, bad := range []string{"", "ffe478", "#ffe4", "#zzzzzz"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
