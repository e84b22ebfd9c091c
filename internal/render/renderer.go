// Package render turns a loaded board position into a PNG image:
// checker grid, highlight overlays, piece sprites and arrow
// annotations composited in fixed layer order.
package render

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"github.com/kapu/boardpix/internal/board"
)

// Config is the immutable per-renderer drawing configuration.
type Config struct {
	// Size is the pixel edge length of the 8x8 board area, excluding
	// padding. Sizes not divisible by 8 accumulate truncation drift
	// across cells; this is accepted, not corrected.
	Size    int
	Padding Padding
	Light   color.Color
	Dark    color.Color
	// Highlight is composited over the base square fill, so it shows on
	// dark and light squares alike.
	Highlight color.Color
	// Style selects the embedded sprite set.
	Style string
	// Flipped rotates the board 180 degrees: rank 1 on top, file a on
	// the right.
	Flipped bool
	// Coordinates draws file and rank labels in the left and bottom
	// padding bands.
	Coordinates bool
}

const (
	DefaultSize  = 480
	DefaultStyle = "classic"
	DefaultTheme = "brown"
)

func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	if c.Style == "" {
		c.Style = DefaultStyle
	}
	if c.Light == nil || c.Dark == nil || c.Highlight == nil {
		theme, _ := ThemeByName(DefaultTheme)
		if c.Light == nil {
			c.Light = theme.Light
		}
		if c.Dark == nil {
			c.Dark = theme.Dark
		}
		if c.Highlight == nil {
			c.Highlight = theme.Highlight
		}
	}
	return c
}

// Renderer is a render session: one position, one highlight set, one
// arrow list, one configuration. It is not safe for concurrent use;
// callers must not mutate it while a render is in flight.
type Renderer struct {
	cfg        Config
	sprites    *SpriteSet
	pos        *board.Position
	highlights map[board.Square]struct{}
	arrows     []Arrow
}

func New(cfg Config) *Renderer {
	return &Renderer{
		cfg:     cfg.withDefaults(),
		sprites: NewSpriteSet(),
		pos:     board.NewPosition(),
	}
}

// LoadFEN loads a position from FEN notation. On failure the previous
// position, if any, stays renderable.
func (r *Renderer) LoadFEN(fen string) error { return r.pos.LoadFEN(fen) }

// LoadGrid loads a position from a raw rank-8-first grid of one-letter
// piece codes. It always succeeds.
func (r *Renderer) LoadGrid(grid [][]string) { r.pos.LoadGrid(grid) }

// Position exposes the underlying position model.
func (r *Renderer) Position() *board.Position { return r.pos }

// SetHighlights replaces the highlighted square set.
func (r *Renderer) SetHighlights(sqs ...board.Square) {
	r.highlights = make(map[board.Square]struct{}, len(sqs))
	for _, sq := range sqs {
		r.highlights[sq] = struct{}{}
	}
}

// SetArrows replaces the arrow list. Arrows render in list order, later
// ones on top.
func (r *Renderer) SetArrows(arrows ...Arrow) {
	r.arrows = append(r.arrows[:0:0], arrows...)
}

// Render composites the board and returns it PNG-encoded. It fails with
// board.ErrNotLoaded until a position load has succeeded. Collaborator
// failures (missing sprite, encode error) propagate unchanged.
func (r *Renderer) Render(ctx context.Context) ([]byte, error) {
	if !r.pos.Loaded() {
		return nil, board.ErrNotLoaded
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	cfg := r.cfg
	w := cfg.Size + cfg.Padding.Left + cfg.Padding.Right
	h := cfg.Size + cfg.Padding.Top + cfg.Padding.Bottom
	cv := NewCanvas(w, h)

	if err := paint(cv, r.pos, r.highlights, r.arrows, cfg, r.sprites); err != nil {
		return nil, err
	}
	return cv.EncodePNG()
}

// RenderToFile renders and writes the PNG to path. The write is awaited;
// its error is the caller's to handle, with no retry and no cleanup of
// partial files.
func (r *Renderer) RenderToFile(ctx context.Context, path string) error {
	buf, err := r.Render(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// paint draws every layer in strict order: background, dark squares,
// highlights, pieces, arrows.
func paint(cv Canvas, pos *board.Position, highlights map[board.Square]struct{}, arrows []Arrow, cfg Config, sprites *SpriteSet) error {
	cv.FillRect(cv.Bounds(), cfg.Light)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			rect := CellRect(i, j, cfg.Size, cfg.Padding)
			sq := SquareAt(i, j, cfg.Flipped)

			if IsDark(i, j) {
				cv.FillRect(rect, cfg.Dark)
			}
			if _, ok := highlights[sq]; ok {
				cv.FillRect(rect, cfg.Highlight)
			}
			if pc, ok := pos.PieceAt(sq); ok {
				sprite, err := sprites.Load(cfg.Style, pc, rect.Dx())
				if err != nil {
					return err
				}
				cv.DrawImage(sprite, rect)
			}
		}
	}

	cell := float64(cfg.Size) / 8
	for _, a := range arrows {
		clr := a.Color
		if clr == nil {
			clr = cfg.Highlight
		}
		start := Center(a.From, cfg.Flipped, cfg.Size, cfg.Padding)
		end := Center(a.To, cfg.Flipped, cfg.Size, cfg.Padding)
		drawArrow(cv, start, end, cell, clr)
	}

	if cfg.Coordinates {
		drawCoordinates(cv, cfg)
	}
	return nil
}

// drawCoordinates labels ranks in the left padding band and files in
// the bottom one. Labels follow the flip, so they always name what the
// adjacent row or column shows.
func drawCoordinates(cv Canvas, cfg Config) {
	labelColor := cfg.Dark
	cell := cfg.Size / 8
	const ascent = 11 // basicfont.Face7x13 ascent

	if cfg.Padding.Left > 0 {
		for i := 0; i < 8; i++ {
			sq := SquareAt(i, 0, cfg.Flipped)
			x := cfg.Padding.Left / 2
			y := cfg.Padding.Top + i*cell + cell/2 + ascent/2
			cv.DrawText(fmt.Sprintf("%d", sq.Rank+1), x, y, labelColor)
		}
	}
	if cfg.Padding.Bottom > 0 {
		for j := 0; j < 8; j++ {
			sq := SquareAt(0, j, cfg.Flipped)
			rect := CellRect(0, j, cfg.Size, cfg.Padding)
			x := rect.Min.X + cell/2
			y := cfg.Padding.Top + cfg.Size + (cfg.Padding.Bottom+ascent)/2
			cv.DrawText(string(fileLetters[sq.File]), x, y, labelColor)
		}
	}
}
