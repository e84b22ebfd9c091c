package board

import (
	"errors"
	"fmt"

	chesslib "github.com/corentings/chess/v2"
)

var (
	// ErrNotLoaded is returned by render entry points when no position
	// has been loaded yet.
	ErrNotLoaded = errors.New("no position loaded")
	// ErrParse is returned when the rules engine rejects a notation string.
	ErrParse = errors.New("position could not be parsed")
)

// Position is the renderable 64-square state. It starts empty and
// becomes loaded after a successful LoadFEN or any LoadGrid call; each
// load replaces the previous state wholesale.
type Position struct {
	squares [64]Piece
	present [64]bool
	loaded  bool
}

func NewPosition() *Position { return &Position{} }

// Loaded reports whether a position has been loaded and may be rendered.
func (p *Position) Loaded() bool { return p.loaded }

// PieceAt returns the occupant of sq, if any.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	i := sq.index()
	return p.squares[i], p.present[i]
}

// SetPiece places a piece on sq, replacing any occupant.
func (p *Position) SetPiece(sq Square, pc Piece) {
	i := sq.index()
	p.squares[i] = pc
	p.present[i] = true
}

// Clear empties every square. It does not change loadedness.
func (p *Position) Clear() {
	p.squares = [64]Piece{}
	p.present = [64]bool{}
}

// Occupied counts non-empty squares.
func (p *Position) Occupied() int {
	n := 0
	for _, ok := range p.present {
		if ok {
			n++
		}
	}
	return n
}

// LoadFEN parses a FEN string through the rules engine and replaces the
// position with the result. On failure the prior state, including
// loadedness, is left untouched.
func (p *Position) LoadFEN(fen string) error {
	option, err := chesslib.FEN(fen)
	if err != nil {
		return fmt.Errorf("%w: fen %q: %v", ErrParse, fen, err)
	}
	game := chesslib.NewGame(option)

	var next Position
	for sq, pc := range game.Position().Board().SquareMap() {
		if pc == chesslib.NoPiece {
			continue
		}
		next.SetPiece(Sq(int(sq.File()), int(sq.Rank())), convertPiece(pc))
	}
	next.loaded = true
	*p = next
	return nil
}

// LoadGrid replaces the position from a row-major grid of one-letter
// piece codes, rank 8 first. Uppercase is white, lowercase black, empty
// string means no piece. It always succeeds and marks the position
// loaded; cells outside the 8x8 board are ignored.
func (p *Position) LoadGrid(grid [][]string) {
	var next Position
	for r, row := range grid {
		if r > 7 {
			break
		}
		for c, cell := range row {
			if c > 7 || cell == "" {
				continue
			}
			next.SetPiece(Sq(c, 7-r), pieceFromLetter([]rune(cell)[0]))
		}
	}
	next.loaded = true
	*p = next
}

func convertPiece(pc chesslib.Piece) Piece {
	color := Black
	if pc.Color() == chesslib.White {
		color = White
	}
	var kind Kind
	switch pc.Type() {
	case chesslib.King:
		kind = King
	case chesslib.Queen:
		kind = Queen
	case chesslib.Rook:
		kind = Rook
	case chesslib.Bishop:
		kind = Bishop
	case chesslib.Knight:
		kind = Knight
	case chesslib.Pawn:
		kind = Pawn
	}
	return Piece{Color: color, Kind: kind}
}
