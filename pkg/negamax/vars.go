package negamax

import "github.com/IlikeChooros/go-negamax/pkg/ttt"

const (
	// Number of slots in the transposition table
	DefaultTableSize int = 131072
)

// Static move priority: center, corners, then edges
var StaticOrder = [ttt.NumCells]ttt.Cell{
	ttt.B2,
	ttt.A3, ttt.C3, ttt.A1, ttt.C1,
	ttt.B3, ttt.A2, ttt.C2, ttt.B1,
}

// Lowest and highest score a search can return, see ttt.Position.Score
const (
	MinScore = ttt.MinScore
	MaxScore = ttt.MaxScore
)
