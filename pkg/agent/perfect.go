package agent

import (
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-negamax/pkg/negamax"
	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

// Plays optimally, searching the whole game tree with a transposition table
type PerfectAgent struct {
	engine    *negamax.Engine
	tableSize int
}

// Create a perfect agent, tableSize <= 0 uses the default table size
func NewPerfectAgent(tableSize int) *PerfectAgent {
	return &PerfectAgent{
		engine:    negamax.NewEngine(negamax.NewTranspositionTable(tableSize)),
		tableSize: tableSize,
	}
}

func (a *PerfectAgent) SelectMove(pos *ttt.Position) ttt.Move {
	if !checkPlayable(a.Name(), pos) {
		return ttt.NoMove
	}

	move, score := a.engine.BestMove(pos)
	log.Debug().
		Str("agent", a.Name()).
		Str("move", move.String()).
		Int("score", score).
		Int("nodes", a.engine.Nodes()).
		Msg("move-selected")
	return move
}

// Value of the position for the side to move
func (a *PerfectAgent) Evaluate(pos *ttt.Position) int {
	return a.engine.Evaluate(pos)
}

func (a *PerfectAgent) Search(pos *ttt.Position) negamax.SearchResult {
	return a.engine.Search(pos)
}

func (a *PerfectAgent) Engine() *negamax.Engine {
	return a.engine
}

func (a *PerfectAgent) NodesVisited() int {
	return a.engine.Nodes()
}

func (a *PerfectAgent) Reset() {
	a.engine.Reset()
}

func (a *PerfectAgent) Name() string {
	return "perfect"
}

func (a *PerfectAgent) Clone() Agent {
	clone := NewPerfectAgent(a.tableSize)
	limits := *a.engine.Limits()
	clone.engine.SetLimits(&limits)
	return clone
}
