package negamax

import "github.com/IlikeChooros/go-negamax/pkg/ttt"

// Move ordering heuristic, higher scores are searched first.
// Receives the position before the move is played.
type ScoreFunc func(pos *ttt.Position, move ttt.Move) int

// Scores every move the same, the search falls back to StaticOrder
func ZeroScore(*ttt.Position, ttt.Move) int {
	return 0
}

const (
	completeLineBonus = 100
	blockLineBonus    = 50
	openLineBonus     = 1
)

// Prefers moves that win on the spot, then the ones blocking opponent's line,
// then cells with the most lines still open for the mover
func ThreatScore(pos *ttt.Position, move ttt.Move) int {
	mover, mask := pos.Occupancy()
	opponent := mover ^ mask
	m := uint16(move)

	score := 0
	for _, line := range ttt.WinningLines() {
		if line&m == 0 {
			continue
		}

		switch {
		case (mover|m)&line == line:
			score += completeLineBonus
		case (opponent|m)&line == line:
			score += blockLineBonus
		case opponent&line == 0:
			score += openLineBonus
		}
	}
	return score
}
