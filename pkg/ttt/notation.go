package ttt

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

const (
	StartingPosition string = ".../.../..."
)

var (
	ErrInvalidNotation = errors.New("invalid notation")
)

// Notation of the position, 9 characters in row-major order, 'x' and 'o'
// for the pieces, '.' for the empty cells, rows separated by '/':
//
//	x.o/.x./..o
//
// The side to move is implied by the piece counts.
func (p *Position) Notation() string {
	builder := strings.Builder{}
	for c := range Cell(NumCells) {
		if c != 0 && c%3 == 0 {
			builder.WriteByte('/')
		}
		switch p.At(c) {
		case Cross:
			builder.WriteByte('x')
		case Circle:
			builder.WriteByte('o')
		default:
			builder.WriteByte('.')
		}
	}
	return builder.String()
}

// Set the position from the notation, see Notation. On error the position is left unchanged
func (p *Position) FromNotation(notation string) error {
	var cross, circle uint16
	cell := Cell(0)

	for _, r := range strings.ToLower(strings.TrimSpace(notation)) {
		if r == '/' {
			continue
		}
		if cell >= NumCells {
			return errors.Wrapf(ErrInvalidNotation, "%q: too many cells", notation)
		}

		switch r {
		case 'x':
			cross |= uint16(CellMask(cell))
		case 'o':
			circle |= uint16(CellMask(cell))
		case '.', '-':
		default:
			return errors.Wrapf(ErrInvalidNotation, "%q: unexpected character %q", notation, r)
		}
		cell++
	}

	if cell != NumCells {
		return errors.Wrapf(ErrInvalidNotation, "%q: expected %d cells, got %d", notation, NumCells, cell)
	}

	nCross, nCircle := bits.OnesCount16(cross), bits.OnesCount16(circle)
	if nCross != nCircle && nCross != nCircle+1 {
		return errors.Wrapf(ErrInvalidNotation, "%q: %d crosses and %d circles", notation, nCross, nCircle)
	}

	// Only the player who moved last can have a line
	crossWon, circleWon := checkWinning(cross), checkWinning(circle)
	if (crossWon && nCross == nCircle) || (circleWon && nCross != nCircle) {
		return errors.Wrapf(ErrInvalidNotation, "%q: unreachable position", notation)
	}

	moves := nCross + nCircle
	p.mask = cross | circle
	p.moves = moves
	if moves&1 == 0 {
		p.position = cross
	} else {
		p.position = circle
	}
	return nil
}

// Create a new position from the notation
func ParseNotation(notation string) (*Position, error) {
	pos := NewPosition()
	if err := pos.FromNotation(notation); err != nil {
		return nil, err
	}
	return pos, nil
}

// Pretty representation of the board:
//
//	X . .
//	. O .
//	. . .
func (p *Position) String() string {
	builder := strings.Builder{}
	for c := range Cell(NumCells) {
		builder.WriteString(p.At(c).String())
		if c%3 == 2 {
			builder.WriteByte('\n')
		} else {
			builder.WriteByte(' ')
		}
	}
	return builder.String()
}
