package render

import (
	_ "embed"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"sync"

	yaml "gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesRaw []byte

// Theme bundles the three fills of the checker pattern.
type Theme struct {
	Light     color.NRGBA
	Dark      color.NRGBA
	Highlight color.NRGBA
}

type themeSpec struct {
	Light     string `yaml:"light"`
	Dark      string `yaml:"dark"`
	Highlight string `yaml:"highlight"`
}

var (
	themesOnce sync.Once
	themes     map[string]Theme
	themesErr  error
)

func loadThemes() {
	var specs map[string]themeSpec
	if err := yaml.Unmarshal(themesRaw, &specs); err != nil {
		themesErr = fmt.Errorf("parse embedded themes: %w", err)
		return
	}
	themes = make(map[string]Theme, len(specs))
	for name, spec := range specs {
		light, err := ParseHexColor(spec.Light)
		if err != nil {
			themesErr = fmt.Errorf("theme %s light: %w", name, err)
			return
		}
		dark, err := ParseHexColor(spec.Dark)
		if err != nil {
			themesErr = fmt.Errorf("theme %s dark: %w", name, err)
			return
		}
		highlight, err := ParseHexColor(spec.Highlight)
		if err != nil {
			themesErr = fmt.Errorf("theme %s highlight: %w", name, err)
			return
		}
		themes[name] = Theme{Light: light, Dark: dark, Highlight: highlight}
	}
}

// ThemeByName resolves a named color theme from the embedded catalog.
func ThemeByName(name string) (Theme, error) {
	themesOnce.Do(loadThemes)
	if themesErr != nil {
		return Theme{}, themesErr
	}
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// ThemeNames lists the embedded theme names, sorted.
func ThemeNames() []string {
	themesOnce.Do(loadThemes)
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseHexColor reads "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' || (len(s) != 7 && len(s) != 9) {
		return color.NRGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := color.NRGBA{A: 0xff}
	if len(s) == 9 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}
