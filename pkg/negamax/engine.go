package negamax

import (
	"context"

	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

// Exhaustive negamax search with alpha-beta pruning.
//
// With a transposition table, positions reached through different move orders
// are searched once; without one the engine runs the plain fail-soft variant.
// The engine owns its table, use one engine per goroutine.
type Engine struct {
	tt      *TranspositionTable
	sorters [ttt.NumCells]MoveSorter
	scoreFn ScoreFunc
	limiter LimiterLike
	nodes   int
	start   int // node counter when the current search began
	aborted bool
	bounded bool
}

// Create a new engine, nil table gives the plain variant
func NewEngine(tt *TranspositionTable) *Engine {
	return &Engine{
		tt:      tt,
		scoreFn: ZeroScore,
		limiter: LimiterLike(NewLimiter()),
	}
}

// Set the move ordering heuristic, nil restores ZeroScore
func (e *Engine) SetScoreFunc(fn ScoreFunc) *Engine {
	if fn == nil {
		fn = ZeroScore
	}
	e.scoreFn = fn
	return e
}

func (e *Engine) SetLimits(limits *Limits) *Engine {
	e.limiter.SetLimits(limits)
	return e
}

func (e *Engine) Limits() *Limits {
	return e.limiter.Limits()
}

// Adds custom context to the limiter, cancelling it stops the search
func (e *Engine) SetContext(ctx context.Context) *Engine {
	e.limiter.SetContext(ctx)
	return e
}

// Stop the running search
func (e *Engine) Stop() {
	e.limiter.SetStop(true)
}

// Get the reason why the last search was stopped, StopNone if it completed
func (e *Engine) StopReason() StopReason {
	return e.limiter.StopReason()
}

// The engine's transposition table, nil for the plain variant
func (e *Engine) Table() *TranspositionTable {
	return e.tt
}

// Number of nodes visited since the last Reset, across all searches
func (e *Engine) Nodes() int {
	return e.nodes
}

// Clear the node counter and the transposition table
func (e *Engine) Reset() {
	e.nodes = 0
	if e.tt != nil {
		e.tt.Clear()
	}
}

// Value of the position for the player to move, in [MinScore, MaxScore]
func (e *Engine) Evaluate(pos *ttt.Position) int {
	return e.Negamax(pos, MinScore, MaxScore)
}

// Search the position with given alpha-beta window, clamped to [MinScore, MaxScore]
func (e *Engine) Negamax(pos *ttt.Position, alpha, beta int) int {
	e.setup()
	return e.negamax(pos, max(alpha, MinScore), min(beta, MaxScore))
}

// Pick the best move for the player to move, along with its value.
// Ties keep the move that comes first in the move order.
// Returns NoMove if the game is already over.
func (e *Engine) BestMove(pos *ttt.Position) (ttt.Move, int) {
	e.setup()
	return e.root(pos)
}

func (e *Engine) setup() {
	e.limiter.Reset()
	e.start = e.nodes
	e.aborted = false
	e.bounded = true
}

// Score of a finished game, from the side to move
func terminalScore(pos *ttt.Position) (int, bool) {
	if pos.Winning() {
		return pos.Score(), true
	}
	if pos.OpponentWinning() {
		return -pos.Score(), true
	}
	if pos.Full() {
		return 0, true
	}
	return 0, false
}

// Fill the ply's move sorter with the legal moves
func (e *Engine) orderMoves(pos *ttt.Position) *MoveSorter {
	sorter := &e.sorters[pos.NumMoves()]
	sorter.Clear()

	free := pos.PossibleMoves()
	for _, cell := range StaticOrder {
		if move := free & ttt.CellMask(cell); move != ttt.NoMove {
			sorter.Add(move, e.scoreFn(pos, move))
		}
	}
	return sorter
}

func (e *Engine) stopped() bool {
	if e.aborted {
		return true
	}
	if e.bounded && !e.limiter.Ok(uint32(e.nodes-e.start)) {
		e.aborted = true
	}
	return e.aborted
}

// Root move selection, alpha tightens across the siblings
func (e *Engine) root(pos *ttt.Position) (ttt.Move, int) {
	if score, over := terminalScore(pos); over {
		return ttt.NoMove, score
	}

	alpha := MinScore
	best := ttt.NoMove
	sorter := e.orderMoves(pos)

	for move, ok := sorter.Pop(); ok; move, ok = sorter.Pop() {
		if best == ttt.NoMove {
			best = move
		}

		pos.Play(move)
		score := -e.negamax(pos, MinScore, -alpha)
		pos.Undo(move)

		if e.aborted {
			break
		}
		if score > alpha {
			alpha = score
			best = move
		}
	}

	return best, alpha
}

func (e *Engine) negamax(pos *ttt.Position, alpha, beta int) int {
	if e.tt == nil {
		return e.plainNegamax(pos, alpha, beta)
	}

	e.nodes++
	if e.stopped() {
		return alpha
	}

	key := pos.Key()
	if value, depth, ok := e.tt.Lookup(key); ok && int(depth) >= pos.NumMoves() {
		// Stored values are upper bounds
		score := int(value) + MinScore - 1
		beta = min(beta, score)
		if alpha >= beta {
			return score
		}
	}

	if score, over := terminalScore(pos); over {
		return score
	}

	sorter := e.orderMoves(pos)
	for move, ok := sorter.Pop(); ok; move, ok = sorter.Pop() {
		pos.Play(move)
		score := -e.negamax(pos, -beta, -alpha)
		pos.Undo(move)

		if e.aborted {
			return alpha
		}

		alpha = max(alpha, score)
		if alpha >= beta {
			break
		}
	}

	// A beta cutoff is only a lower bound, it can't be read back as an upper one
	if alpha < beta {
		e.tt.Store(key, uint8(alpha-MinScore+1), uint8(pos.NumMoves()))
	}
	return alpha
}

// Fail-soft variant without the table, returns the best child value
// even when it's outside the window
func (e *Engine) plainNegamax(pos *ttt.Position, alpha, beta int) int {
	e.nodes++
	if e.stopped() {
		return alpha
	}

	if score, over := terminalScore(pos); over {
		return score
	}

	best := MinScore
	sorter := e.orderMoves(pos)
	for move, ok := sorter.Pop(); ok; move, ok = sorter.Pop() {
		pos.Play(move)
		score := -e.plainNegamax(pos, -beta, -alpha)
		pos.Undo(move)

		if e.aborted {
			return best
		}

		best = max(best, score)
		alpha = max(alpha, best)
		if alpha >= beta {
			break
		}
	}

	return best
}
