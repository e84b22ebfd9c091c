package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Point is a pixel position with sub-pixel precision.
type Point struct {
	X float64
	Y float64
}

// Canvas is the raster surface the renderer composes onto.
type Canvas interface {
	// FillRect fills r with clr, alpha-compositing over existing pixels.
	FillRect(r image.Rectangle, clr color.Color)
	// DrawImage draws img scaled to cover r.
	DrawImage(img image.Image, r image.Rectangle)
	// FillTriangle rasterizes the triangle a-b-c with clr.
	FillTriangle(a, b, c Point, clr color.Color)
	// FillQuad rasterizes the convex quad a-b-c-d with clr.
	FillQuad(a, b, c, d Point, clr color.Color)
	// DrawText draws s horizontally centered on centerX at the given
	// baseline.
	DrawText(s string, centerX, baseline int, clr color.Color)
	// EncodePNG serializes the canvas to a PNG byte buffer.
	EncodePNG() ([]byte, error)

	Bounds() image.Rectangle
}

type imageCanvas struct {
	img *image.RGBA
}

// NewCanvas allocates a transparent w x h raster canvas.
func NewCanvas(w, h int) Canvas {
	return &imageCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *imageCanvas) Bounds() image.Rectangle { return c.img.Bounds() }

func (c *imageCanvas) FillRect(r image.Rectangle, clr color.Color) {
	imagedraw.Draw(c.img, r, image.NewUniform(clr), image.Point{}, imagedraw.Over)
}

func (c *imageCanvas) DrawImage(img image.Image, r image.Rectangle) {
	if img.Bounds().Dx() == r.Dx() && img.Bounds().Dy() == r.Dy() {
		imagedraw.Draw(c.img, r, img, img.Bounds().Min, imagedraw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(c.img, r, img, img.Bounds(), xdraw.Over, nil)
}

func (c *imageCanvas) DrawText(s string, centerX, baseline int, clr color.Color) {
	if s == "" {
		return
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(clr),
		Face: basicfont.Face7x13,
	}
	width := drawer.MeasureString(s).Round()
	drawer.Dot = fixed.P(centerX-width/2, baseline)
	drawer.DrawString(s)
}

func (c *imageCanvas) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *imageCanvas) FillQuad(a, b, d, e Point, clr color.Color) {
	c.FillTriangle(a, b, d, clr)
	c.FillTriangle(a, d, e, clr)
}

func (c *imageCanvas) FillTriangle(a, b, d Point, clr color.Color) {
	minX := int(math.Floor(min3(a.X, b.X, d.X)))
	maxX := int(math.Ceil(max3(a.X, b.X, d.X)))
	minY := int(math.Floor(min3(a.Y, b.Y, d.Y)))
	maxY := int(math.Ceil(max3(a.Y, b.Y, d.Y)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if pointInTriangle(float64(x)+0.5, float64(y)+0.5, a, b, d) {
				c.blendPixel(x, y, clr)
			}
		}
	}
}

func pointInTriangle(x, y float64, a, b, c Point) bool {
	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if denom == 0 {
		return false
	}
	alpha := ((b.Y-c.Y)*(x-c.X) + (c.X-b.X)*(y-c.Y)) / denom
	beta := ((c.Y-a.Y)*(x-c.X) + (a.X-c.X)*(y-c.Y)) / denom
	gamma := 1 - alpha - beta
	return alpha >= 0 && beta >= 0 && gamma >= 0
}

func (c *imageCanvas) blendPixel(x, y int, clr color.Color) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}

	sr, sg, sb, sa := clr.RGBA()
	srcA := float64(sa) / 65535.0
	if srcA <= 0 {
		return
	}
	srcR := float64(sr) / 65535.0
	srcG := float64(sg) / 65535.0
	srcB := float64(sb) / 65535.0

	dst := c.img.RGBAAt(x, y)
	dstA := float64(dst.A) / 255.0

	var dstR, dstG, dstB float64
	if dstA > 0 {
		inv := 1.0 / dstA
		dstR = float64(dst.R) / 255.0 * inv
		dstG = float64(dst.G) / 255.0 * inv
		dstB = float64(dst.B) / 255.0 * inv
	}

	outA := srcA + dstA*(1-srcA)
	if outA <= 0 {
		c.img.SetRGBA(x, y, color.RGBA{})
		return
	}

	outR := (srcR*srcA + dstR*dstA*(1-srcA)) / outA
	outG := (srcG*srcA + dstG*dstA*(1-srcA)) / outA
	outB := (srcB*srcA + dstB*dstA*(1-srcA)) / outA

	c.img.SetRGBA(x, y, color.RGBA{
		R: clamp8(outR * outA * 255.0),
		G: clamp8(outG * outA * 255.0),
		B: clamp8(outB * outA * 255.0),
		A: clamp8(outA * 255.0),
	})
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
