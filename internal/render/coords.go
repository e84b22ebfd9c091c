package render

import (
	"image"

	"github.com/kapu/boardpix/internal/board"
)

// Padding is extra canvas space outside the board area, in pixels.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

var fileLetters = [8]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}

// SquareAt maps a rendering cell (i = row, j = column, both 0..7 in
// drawing order) to the algebraic square shown there. Rows map to rank
// 8-i unflipped and i+1 flipped. The file index is 7-j unflipped and j
// flipped, looked up in the fixed a..h file order.
func SquareAt(i, j int, flipped bool) board.Square {
	if flipped {
		return board.Sq(j, i)
	}
	return board.Sq(7-j, 7-i)
}

// CellOf is the inverse of SquareAt: the rendering cell that shows sq.
func CellOf(sq board.Square, flipped bool) (i, j int) {
	if flipped {
		return sq.Rank, sq.File
	}
	return 7 - sq.Rank, 7 - sq.File
}

// IsDark reports whether rendering cell (i, j) gets the dark fill.
// Parity is a property of the cell, not the square name, so the dark
// pattern sits at the same pixels in both orientations.
func IsDark(i, j int) bool { return (i+j)%2 == 0 }

// CellRect is the pixel rectangle of rendering cell (i, j). The
// horizontal slot is always 7-j: the drawing loop paints column j
// mirrored, while the flip flag only changes which file SquareAt
// reports for the slot.
func CellRect(i, j, size int, pad Padding) image.Rectangle {
	cell := float64(size) / 8
	x := cell*float64(7-j+1) - cell + float64(pad.Left)
	y := cell*float64(i) + float64(pad.Top)
	return image.Rect(int(x), int(y), int(x+cell), int(y+cell))
}

// Center is the pixel center of sq under the given orientation, used
// for arrow endpoints. It resolves the visual (row, column) slot of sq
// and returns corner plus half a cell, padding included.
func Center(sq board.Square, flipped bool, size int, pad Padding) Point {
	i, j := CellOf(sq, flipped)
	row := i
	col := 7 - j // same pixel mirroring as CellRect
	cell := float64(size) / 8
	return Point{
		X: float64(col+1)*cell - cell/2 + float64(pad.Left),
		Y: float64(row+1)*cell - cell/2 + float64(pad.Top),
	}
}
