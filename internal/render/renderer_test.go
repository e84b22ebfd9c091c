package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/kapu/boardpix/internal/board"
)

func emptyGrid() [][]string {
	grid := make([][]string, 8)
	for i := range grid {
		grid[i] = make([]string, 8)
	}
	return grid
}

func decode(t *testing.T, buf []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return img
}

func sameColor(c color.Color, want color.NRGBA) bool {
	r, g, b, _ := c.RGBA()
	wr, wg, wb, _ := want.RGBA()
	return r == wr && g == wg && b == wb
}

func TestRenderNotReady(t *testing.T) {
	r := New(Config{Size: 400})
	if _, err := r.Render(context.Background()); !errors.Is(err, board.ErrNotLoaded) {
		t.Fatalf("want ErrNotLoaded, got %v", err)
	}
	r.LoadGrid(emptyGrid())
	if _, err := r.Render(context.Background()); err != nil {
		t.Fatalf("render after grid load: %v", err)
	}
}

func TestRenderCanvasDimensions(t *testing.T) {
	r := New(Config{Size: 400, Padding: Padding{Top: 10, Right: 20, Bottom: 30, Left: 40}})
	r.LoadGrid(emptyGrid())
	buf, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img := decode(t, buf)
	if img.Bounds().Dx() != 460 || img.Bounds().Dy() != 440 {
		t.Fatalf("canvas = %v, want 460x440", img.Bounds())
	}
}

func TestRenderKingTopLeft(t *testing.T) {
	theme, err := ThemeByName("brown")
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	grid := emptyGrid()
	grid[0][0] = "K" // a8

	r := New(Config{Size: 400})
	r.LoadGrid(grid)
	buf, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img := decode(t, buf)

	// White king body covers the center of the top-left 50x50 cell.
	cr, cg, cb, _ := img.At(25, 25).RGBA()
	if cr>>8 < 200 || cg>>8 < 200 || cb>>8 < 200 {
		t.Fatalf("top-left cell center = %v, want white king body", img.At(25, 25))
	}
	// a1 (bottom-left) renders dark, untouched by the sprite.
	if !sameColor(img.At(25, 375), theme.Dark) {
		t.Fatalf("a1 cell = %v, want dark %v", img.At(25, 375), theme.Dark)
	}
	// h1 (bottom-right) stays light.
	if !sameColor(img.At(375, 375), theme.Light) {
		t.Fatalf("h1 cell = %v, want light %v", img.At(375, 375), theme.Light)
	}
}

func TestRenderKingFlipped(t *testing.T) {
	theme, err := ThemeByName("brown")
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	grid := emptyGrid()
	grid[0][0] = "K" // a8

	r := New(Config{Size: 400, Flipped: true})
	r.LoadGrid(grid)
	buf, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img := decode(t, buf)

	// Flipped, a8 shows in the bottom-right cell.
	cr, cg, cb, _ := img.At(375, 375).RGBA()
	if cr>>8 < 200 || cg>>8 < 200 || cb>>8 < 200 {
		t.Fatalf("bottom-right cell center = %v, want white king body", img.At(375, 375))
	}
	// The top-left cell is now h1: still a light square, no sprite.
	if !sameColor(img.At(25, 25), theme.Light) {
		t.Fatalf("top-left cell = %v, want light %v", img.At(25, 25), theme.Light)
	}
}

func TestFlipKeepsCheckerPixelsInPlace(t *testing.T) {
	// Parity and pixel placement are functions of the rendering cell
	// alone, so flipping an empty board changes nothing visually.
	a := New(Config{Size: 400})
	a.LoadGrid(emptyGrid())
	plain, err := a.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := New(Config{Size: 400, Flipped: true})
	b.LoadGrid(emptyGrid())
	flipped, err := b.Render(context.Background())
	if err != nil {
		t.Fatalf("render flipped: %v", err)
	}
	if !bytes.Equal(plain, flipped) {
		t.Fatal("flip must not move the checker pattern or resize the canvas")
	}
}

func TestRenderHighlightOverridesDark(t *testing.T) {
	theme, err := ThemeByName("brown")
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	a1, _ := board.ParseSquare("a1")

	r := New(Config{Size: 400})
	r.LoadGrid(emptyGrid())
	r.SetHighlights(a1)
	buf, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img := decode(t, buf)

	got := img.At(25, 375)
	if sameColor(got, theme.Dark) || sameColor(got, theme.Light) {
		t.Fatalf("a1 = %v, want highlight blended over dark", got)
	}
}

func TestRenderArrowsOnTopAndDegenerate(t *testing.T) {
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")

	base := New(Config{Size: 400})
	base.LoadGrid(emptyGrid())
	plain, err := base.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	withArrow := New(Config{Size: 400})
	withArrow.LoadGrid(emptyGrid())
	withArrow.SetArrows(Arrow{From: e2, To: e4, Color: color.NRGBA{R: 255, A: 200}})
	arrowed, err := withArrow.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if bytes.Equal(plain, arrowed) {
		t.Fatal("arrow did not change the image")
	}

	degenerate := New(Config{Size: 400})
	degenerate.LoadGrid(emptyGrid())
	degenerate.SetArrows(Arrow{From: e2, To: e2, Color: color.NRGBA{R: 255, A: 200}})
	same, err := degenerate.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(plain, same) {
		t.Fatal("degenerate arrow must not change the image")
	}
}

func TestRenderMissingStyle(t *testing.T) {
	grid := emptyGrid()
	grid[0][0] = "K"
	r := New(Config{Size: 400, Style: "no-such-style"})
	r.LoadGrid(grid)
	if _, err := r.Render(context.Background()); !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("want ErrAssetMissing, got %v", err)
	}
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	r := New(Config{Size: 160})
	if err := r.RenderToFile(context.Background(), path); !errors.Is(err, board.ErrNotLoaded) {
		t.Fatalf("want ErrNotLoaded before load, got %v", err)
	}
	if err := r.LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := r.RenderToFile(context.Background(), path); err != nil {
		t.Fatalf("render to file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	decode(t, data)
}
