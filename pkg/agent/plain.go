package agent

import (
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-negamax/pkg/negamax"
	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

// Alpha-beta search without a transposition table, children ordered
// by a scoring function. Plays optimally, just visits more nodes.
type PlainAgent struct {
	engine  *negamax.Engine
	scoreFn negamax.ScoreFunc
	name    string
}

// Create a plain agent, nil scoreFn means negamax.ZeroScore (static move order)
func NewPlainAgent(scoreFn negamax.ScoreFunc) *PlainAgent {
	return newPlainAgent("plain", scoreFn)
}

func newPlainAgent(name string, scoreFn negamax.ScoreFunc) *PlainAgent {
	return &PlainAgent{
		engine:  negamax.NewEngine(nil).SetScoreFunc(scoreFn),
		scoreFn: scoreFn,
		name:    name,
	}
}

func (a *PlainAgent) SelectMove(pos *ttt.Position) ttt.Move {
	if !checkPlayable(a.name, pos) {
		return ttt.NoMove
	}

	move, score := a.engine.BestMove(pos)
	log.Debug().
		Str("agent", a.name).
		Str("move", move.String()).
		Int("score", score).
		Int("nodes", a.engine.Nodes()).
		Msg("move-selected")
	return move
}

func (a *PlainAgent) Evaluate(pos *ttt.Position) int {
	return a.engine.Evaluate(pos)
}

func (a *PlainAgent) Engine() *negamax.Engine {
	return a.engine
}

func (a *PlainAgent) NodesVisited() int {
	return a.engine.Nodes()
}

func (a *PlainAgent) Reset() {
	a.engine.Reset()
}

func (a *PlainAgent) Name() string {
	return a.name
}

func (a *PlainAgent) Clone() Agent {
	clone := newPlainAgent(a.name, a.scoreFn)
	limits := *a.engine.Limits()
	clone.engine.SetLimits(&limits)
	return clone
}
