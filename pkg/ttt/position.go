package ttt

import (
	"math/bits"

	"github.com/pkg/errors"
)

var (
	ErrIllegalMove = errors.New("illegal move")
)

// Position of a 3x3 tic tac toe board, stored as two 9-bit numbers:
//
//	position - "on" bits are the cells occupied by the player to move
//	mask     - "on" bits are all of the occupied cells
//
// The opponent's cells are simply position ^ mask. Cell 0 is the most significant bit:
//
//	0 1 2        8 7 6
//	3 4 5   ->   5 4 3   (bit numbers)
//	6 7 8        2 1 0
//
// Play and Undo must be paired in strict LIFO order, Undo with any other move than
// the last one played silently corrupts the position (checked only with the 'tttdebug' build tag).
type Position struct {
	position uint16
	mask     uint16
	moves    int
}

// Create an empty position, with cross to move
func NewPosition() *Position {
	return &Position{}
}

// Unique key of the position. Both bitboards are read as base 3 numbers and
// added, so every cell becomes a ternary digit: 0 empty, 1 opponent, 2 mover.
// Binary position + mask would carry between cells and collide. Max is 3^9 - 1.
func (p *Position) Key() uint16 {
	return _ternary[p.position] + _ternary[p.mask]
}

// Number of plies played so far
func (p *Position) NumMoves() int {
	return p.moves
}

// Whether the player to move has a full line. Only happens right after a move
// was played on a 'mover' bitboard, callers interpret the perspective.
func (p *Position) Winning() bool {
	return checkWinning(p.position)
}

// Whether the player who just moved has a full line
func (p *Position) OpponentWinning() bool {
	return checkWinning(p.position ^ p.mask)
}

// Whether all 9 cells are occupied, doesn't imply a draw
func (p *Position) Full() bool {
	return p.moves == NumCells
}

// Absolute score of a won position, 3 for a win after 5 plies down to 1 after 9 plies.
// The sign is applied by the caller, meaningful only for terminal positions
func (p *Position) Score() int {
	return (11 - p.moves) / 2
}

// Bitmask of the empty cells
func (p *Position) PossibleMoves() Move {
	return Move(^p.mask & FullBoard)
}

// Whether given move is a single empty cell on the board
func (p *Position) CanPlay(move Move) bool {
	return move != NoMove &&
		uint16(move)&^FullBoard == 0 &&
		bits.OnesCount16(uint16(move)) == 1 &&
		uint16(move)&p.mask == 0
}

// Play a move, switching the perspective to the other player
func (p *Position) Play(move Move) {
	if debugChecks && !p.CanPlay(move) {
		panic(errors.Wrapf(ErrIllegalMove, "play %016b on mask %09b", move, p.mask))
	}

	// Switch to the next player's board
	p.position ^= p.mask
	p.mask |= uint16(move)
	p.moves++
}

// Undo the most recently played move
func (p *Position) Undo(move Move) {
	if debugChecks && (p.moves == 0 || bits.OnesCount16(uint16(move)) != 1 || uint16(move)&p.mask == 0) {
		panic(errors.Wrapf(ErrIllegalMove, "undo %016b on mask %09b", move, p.mask))
	}

	p.mask ^= uint16(move)
	p.position ^= p.mask
	p.moves--
}

// Play in given cell, 0 through 8
func (p *Position) PlayCell(cell Cell) {
	p.Play(CellMask(cell))
}

// Verifies legality of given move, then if it's valid, makes it on the board
func (p *Position) MakeLegalMove(move Move) error {
	if p.IsTerminated() {
		return errors.Wrapf(ErrIllegalMove, "%s: game is over", move)
	}
	if !p.CanPlay(move) {
		return errors.Wrapf(ErrIllegalMove, "%s, possible moves=[%s]", move, p.GenerateMoves())
	}
	p.Play(move)
	return nil
}

// Raw bitboards: the cells of the player to move and all of the occupied cells
func (p *Position) Occupancy() (mover, mask uint16) {
	return p.position, p.mask
}

// Side to move, cross always starts
func (p *Position) Turn() TurnType {
	return p.moves&1 == 0
}

// Get (cross, circle) bitboards, the 'position' field belongs
// to cross only on even plies
func (p *Position) Bitboards() (cross, circle uint16) {
	cross = p.position
	if p.moves&1 == 1 {
		cross ^= p.mask
	}
	return cross, cross ^ p.mask
}

// Owner of given cell
func (p *Position) At(cell Cell) PlayerType {
	m := uint16(CellMask(cell))
	cross, circle := p.Bitboards()
	switch {
	case cross&m != 0:
		return Cross
	case circle&m != 0:
		return Circle
	}
	return None
}

func (p *Position) Board() [NumCells]PlayerType {
	var board [NumCells]PlayerType
	for c := range Cell(NumCells) {
		board[c] = p.At(c)
	}
	return board
}

// Checks if the bitboard contains any of the winning lines
func checkWinning(bb uint16) bool {
	for _, line := range _winningBitboardPatterns {
		if bb&line == line {
			return true
		}
	}
	return false
}
