package render

import (
	"fmt"
	"strings"

	"github.com/kapu/boardpix/internal/board"
)

// ParseSquareList reads a comma-separated square list like "e4,d5".
func ParseSquareList(raw string) ([]board.Square, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	squares := make([]board.Square, 0, len(parts))
	for _, p := range parts {
		sq, err := board.ParseSquare(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		squares = append(squares, sq)
	}
	return squares, nil
}

// ParseArrowList reads a comma-separated arrow list; each entry is a
// from-to square pair with an optional hex color, like "e2e4" or
// "g1f3:#ff000080". An arrow without a color uses the configured
// highlight color at render time.
func ParseArrowList(raw string) ([]Arrow, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	arrows := make([]Arrow, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		spec, colorSpec, hasColor := strings.Cut(p, ":")
		if len(spec) != 4 {
			return nil, fmt.Errorf("arrow %q: want four characters like e2e4", p)
		}
		from, err := board.ParseSquare(spec[:2])
		if err != nil {
			return nil, err
		}
		to, err := board.ParseSquare(spec[2:])
		if err != nil {
			return nil, err
		}
		arrow := Arrow{From: from, To: to}
		if hasColor {
			clr, err := ParseHexColor(colorSpec)
			if err != nil {
				return nil, err
			}
			arrow.Color = clr
		}
		arrows = append(arrows, arrow)
	}
	return arrows, nil
}
