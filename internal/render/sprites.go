package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/kapu/boardpix/internal/board"
)

//go:embed assets
var assetFiles embed.FS

// ErrAssetMissing is returned when no sprite exists for the requested
// style, color and kind combination.
var ErrAssetMissing = errors.New("piece sprite not found")

type spriteKey struct {
	style string
	piece board.Piece
	size  int
}

// SpriteSet decodes embedded SVG piece sprites at a requested pixel
// size and caches the rasterized result per (style, piece, size). It is
// safe for repeated and concurrent use.
type SpriteSet struct {
	mu    sync.RWMutex
	cache map[spriteKey]image.Image
}

func NewSpriteSet() *SpriteSet {
	return &SpriteSet{cache: make(map[spriteKey]image.Image)}
}

// Styles lists the embedded sprite style identifiers.
func Styles() []string {
	entries, err := assetFiles.ReadDir("assets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// HasStyle reports whether a sprite style with the given name is embedded.
func HasStyle(style string) bool {
	for _, s := range Styles() {
		if s == style {
			return true
		}
	}
	return false
}

// Load returns the sprite for pc in the given style, rasterized to a
// size x size image.
func (s *SpriteSet) Load(style string, pc board.Piece, size int) (image.Image, error) {
	key := spriteKey{style: style, piece: pc, size: size}

	s.mu.RLock()
	if img, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return img, nil
	}
	s.mu.RUnlock()

	name := spriteAssetName(style, pc)
	data, err := assetFiles.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetMissing, name)
		}
		return nil, fmt.Errorf("read sprite %s: %w", name, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(sanitizeSVG(data)))
	if err != nil {
		return nil, fmt.Errorf("parse sprite svg %s: %w", name, err)
	}

	if icon.ViewBox.W <= 0 {
		icon.ViewBox.W = float64(size)
	}
	if icon.ViewBox.H <= 0 {
		icon.ViewBox.H = float64(size)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	s.mu.Lock()
	s.cache[key] = img
	s.mu.Unlock()

	return img, nil
}

func spriteAssetName(style string, pc board.Piece) string {
	prefix := "b"
	if pc.Color == board.White {
		prefix = "w"
	}
	letter := strings.ToUpper(pc.Kind.String())
	return fmt.Sprintf("assets/%s/%s%s.svg", style, prefix, letter)
}

// sanitizeSVG patches style spellings oksvg chokes on.
func sanitizeSVG(svg []byte) []byte {
	fixed := bytes.ReplaceAll(svg, []byte("fill:000000"), []byte("fill:#000000"))
	fixed = bytes.ReplaceAll(fixed, []byte("fill: #"), []byte("fill:#"))
	fixed = bytes.ReplaceAll(fixed, []byte("stroke: #"), []byte("stroke:#"))
	fixed = bytes.ReplaceAll(fixed, []byte("stop-color: #"), []byte("stop-color:#"))
	return fixed
}
