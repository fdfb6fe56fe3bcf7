package negamax

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

type SearchResult struct {
	BestMove   ttt.Move
	Score      int
	Nodes      int
	Elapsed    time.Duration
	Pv         []ttt.Move
	Table      TableStats
	StopReason StopReason
}

func (r SearchResult) String() string {
	pv := make([]string, len(r.Pv))
	for i, m := range r.Pv {
		pv[i] = m.String()
	}

	return fmt.Sprintf("bestmove %s score %d nodes %d time %dus stop %s pv %s",
		r.BestMove, r.Score, r.Nodes, r.Elapsed.Microseconds(), r.StopReason, strings.Join(pv, " "))
}

// Run BestMove and collect the search statistics. The principal variation is
// rebuilt by replaying the best move on a copy of the position, those extra
// searches don't count towards Nodes and ignore the limits.
func (e *Engine) Search(pos *ttt.Position) SearchResult {
	e.setup()
	move, score := e.root(pos)

	result := SearchResult{
		BestMove:   move,
		Score:      score,
		Nodes:      e.nodes - e.start,
		Elapsed:    e.limiter.Elapsed(),
		StopReason: e.limiter.StopReason(),
	}

	if e.tt != nil {
		result.Table = e.tt.Stats()
	}

	if !e.aborted {
		result.Pv = e.principalVariation(pos)
	}

	log.Debug().
		Str("bestmove", move.String()).
		Int("score", score).
		Int("nodes", result.Nodes).
		Dur("elapsed", result.Elapsed).
		Stringer("stop", result.StopReason).
		Msg("search-finished")

	return result
}

func (e *Engine) principalVariation(pos *ttt.Position) []ttt.Move {
	nodes := e.nodes
	e.bounded = false
	defer func() {
		e.nodes = nodes
		e.bounded = true
	}()

	line := *pos
	pv := make([]ttt.Move, 0, ttt.NumCells-line.NumMoves())
	for {
		move, _ := e.root(&line)
		if move == ttt.NoMove {
			break
		}
		pv = append(pv, move)
		line.Play(move)
	}
	return pv
}
