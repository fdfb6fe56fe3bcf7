package ttt

import (
	"math/bits"
	"strings"
)

type MoveList struct {
	Moves [NumCells]Move
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv Move) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

// Get the actual slice of valid moves
func (ml *MoveList) Slice() []Move {
	return ml.Moves[:ml.Size]
}

// Convert movelist into a string, uses move notation with space separation
func (ml *MoveList) String() string {
	if ml.Size == 0 {
		return "empty"
	}

	strMoves := make([]string, ml.Size)
	for i, m := range ml.Slice() {
		strMoves[i] = m.String()
	}
	return strings.Join(strMoves, " ")
}

// Cell of a single-bit move, -1 if the move isn't a single cell
func (m Move) Cell() Cell {
	if bits.OnesCount16(uint16(m)) != 1 || uint16(m)&^FullBoard != 0 {
		return -1
	}
	return Cell(8 - bits.TrailingZeros16(uint16(m)))
}

// Get string representation of the move, letter is the column,
// number is the row, counting from the bottom:
//
//	   a   b   c
//	3  0 | 1 | 2
//	  -----------
//	2  3 | 4 | 5
//	  -----------
//	1  6 | 7 | 8
func (m Move) String() string {
	c := m.Cell()
	if c < 0 {
		return "(none)"
	}
	return c.String()
}

func (c Cell) String() string {
	if c < 0 || c >= NumCells {
		return "(none)"
	}
	return string([]byte{'a' + byte(c%3), '3' - byte(c/3)})
}

// Parse a cell, either in the 'b2' notation or as a plain index '0'-'8',
// returns -1 if the string is neither
func CellFromString(str string) Cell {
	str = strings.ToLower(strings.TrimSpace(str))
	switch len(str) {
	case 1:
		if str[0] >= '0' && str[0] <= '8' {
			return Cell(str[0] - '0')
		}
	case 2:
		if str[0] >= 'a' && str[0] <= 'c' && str[1] >= '1' && str[1] <= '3' {
			return Cell(str[0]-'a') + Cell('3'-str[1])*3
		}
	}
	return -1
}

// Convert given move notation to a Move, NoMove if it's invalid
func MoveFromString(str string) Move {
	c := CellFromString(str)
	if c < 0 {
		return NoMove
	}
	return CellMask(c)
}

// Legal moves in ascending cell order
func (p *Position) GenerateMoves() *MoveList {
	movelist := NewMoveList()

	free := p.PossibleMoves()
	for c := range Cell(NumCells) {
		if m := free & CellMask(c); m != NoMove {
			movelist.AppendMove(m)
		}
	}

	return movelist
}
