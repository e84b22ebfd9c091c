package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestDrawArrowDegenerateIsNoop(t *testing.T) {
	cv := NewCanvas(100, 100)
	cv.FillRect(cv.Bounds(), color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	before, err := cv.EncodePNG()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	drawArrow(cv, Point{X: 50, Y: 50}, Point{X: 50, Y: 50}, 50, color.NRGBA{R: 255, A: 255})

	after, err := cv.EncodePNG()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Fatal("degenerate arrow must draw nothing")
	}
}

func TestDrawArrowPaintsShaftAndHead(t *testing.T) {
	cv := NewCanvas(100, 100).(*imageCanvas)
	cv.FillRect(cv.Bounds(), color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	red := color.NRGBA{R: 200, A: 255}
	drawArrow(cv, Point{X: 10, Y: 50}, Point{X: 90, Y: 50}, 20, red)

	// Shaft midpoint and head tip neighborhood must carry the arrow color.
	mid := cv.img.RGBAAt(50, 50)
	if mid.R != 200 || mid.G != 0 {
		t.Fatalf("shaft midpoint = %+v", mid)
	}
	tip := cv.img.RGBAAt(86, 50)
	if tip.R != 200 || tip.G != 0 {
		t.Fatalf("head tip = %+v", tip)
	}
	// Off-axis pixels beyond the head width stay untouched.
	off := cv.img.RGBAAt(50, 20)
	if off.R != 255 || off.G != 255 {
		t.Fatalf("pixel far from arrow changed: %+v", off)
	}
}
