package ttt

// Move is a bitmask with a single "on" bit, denoting the cell to play in
type Move uint16

// Cell index on the board, 0 is the top-left corner, 8 the bottom-right
//
//	0 | 1 | 2
//	---------
//	3 | 4 | 5
//	---------
//	6 | 7 | 8
type Cell int

type TurnType bool
type PlayerType uint8

const (
	CrossTurn  TurnType = true
	CircleTurn TurnType = false
)

const (
	None   PlayerType = 0
	Cross  PlayerType = 1
	Circle PlayerType = 2
)

const (
	NumCells = 9

	// All 9 relevant bits set
	FullBoard uint16 = 0b111111111

	// The fastest win takes 5 plies, (11 - 5) / 2 = 3, see Position.Score
	MaxScore = 3
	MinScore = -MaxScore

	// Empty move signal, returned when there is nothing to play
	NoMove Move = 0
)

// Enum for the cells, using the same coordinates as the move notation
const (
	A3 Cell = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

// horizontal, vertical and diagonal patterns as bitboards
var _winningBitboardPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Bitboard digits reinterpreted in base 3, see Position.Key
var _ternary [1 << NumCells]uint16

func init() {
	for bb := range _ternary {
		var v, pow uint16 = 0, 1
		for b := 0; b < NumCells; b++ {
			if bb&(1<<b) != 0 {
				v += pow
			}
			pow *= 3
		}
		_ternary[bb] = v
	}
}

// Returns the 8 winning lines, as bitboards
func WinningLines() [8]uint16 {
	return _winningBitboardPatterns
}

// Creates a move bitmask where only given cell is turned on
func CellMask(cell Cell) Move {
	return Move(1) << (8 - cell)
}

func (t TurnType) Player() PlayerType {
	if t == CrossTurn {
		return Cross
	}
	return Circle
}

func (p PlayerType) Opponent() PlayerType {
	switch p {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

func (p PlayerType) String() string {
	switch p {
	case Cross:
		return "X"
	case Circle:
		return "O"
	}
	return "."
}
