package render

import (
	"image/color"
	"math"

	"github.com/kapu/boardpix/internal/board"
)

// Arrow is a directional annotation drawn from the center of one square
// to the center of another, on top of all pieces.
type Arrow struct {
	From  board.Square
	To    board.Square
	Color color.Color
}

// drawArrow paints a shaft quad and a triangular head from start to
// end. scale is the cell size; shaft and head widths derive from it.
// Identical endpoints draw nothing.
func drawArrow(cv Canvas, start, end Point, scale float64, clr color.Color) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	dirX := dx / length
	dirY := dy / length
	perpX := -dirY
	perpY := dirX

	// The shaft stops short of the tip so the head base is not overdrawn.
	baseLength := length - scale*0.45
	if baseLength < scale*0.35 {
		baseLength = length * 0.6
	}
	halfWidth := scale * 0.18
	headWidth := scale * 0.32

	baseX := start.X + dirX*baseLength
	baseY := start.Y + dirY*baseLength

	cv.FillQuad(
		Point{X: start.X - perpX*halfWidth, Y: start.Y - perpY*halfWidth},
		Point{X: start.X + perpX*halfWidth, Y: start.Y + perpY*halfWidth},
		Point{X: baseX + perpX*halfWidth, Y: baseY + perpY*halfWidth},
		Point{X: baseX - perpX*halfWidth, Y: baseY - perpY*halfWidth},
		clr,
	)

	cv.FillTriangle(
		end,
		Point{X: baseX - perpX*headWidth/2, Y: baseY - perpY*headWidth/2},
		Point{X: baseX + perpX*headWidth/2, Y: baseY + perpY*headWidth/2},
		clr,
	)
}
