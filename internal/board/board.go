// Package board holds the in-memory position model: 64 squares, each
// empty or occupied by a colored piece.
package board

import (
	"fmt"
	"unicode"
)

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind is a piece kind identified by its lowercase algebraic letter
// ('p', 'n', 'b', 'r', 'q', 'k'). Grid loads do not validate the
// letter; an unknown kind surfaces later as a missing sprite.
type Kind rune

const (
	Pawn   Kind = 'p'
	Knight Kind = 'n'
	Bishop Kind = 'b'
	Rook   Kind = 'r'
	Queen  Kind = 'q'
	King   Kind = 'k'
)

func (k Kind) String() string { return string(rune(k)) }

type Piece struct {
	Color Color
	Kind  Kind
}

// Square is an algebraic board coordinate with zero-based indices:
// File 0..7 maps to files a..h, Rank 0..7 maps to ranks 1..8.
type Square struct {
	File int
	Rank int
}

// Sq builds a square from zero-based file and rank indices.
func Sq(file, rank int) Square { return Square{File: file, Rank: rank} }

// ParseSquare reads an algebraic coordinate like "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: want file letter plus rank digit", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Square{}, fmt.Errorf("square %q: out of range", s)
	}
	return Square{File: file, Rank: rank}, nil
}

func (s Square) String() string {
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

func (s Square) index() int { return s.Rank*8 + s.File }

func pieceFromLetter(r rune) Piece {
	color := Black
	if unicode.IsUpper(r) {
		color = White
	}
	return Piece{Color: color, Kind: Kind(unicode.ToLower(r))}
}
