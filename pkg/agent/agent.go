package agent

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

var (
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrUnknownAgent = errors.New("unknown agent")
)

// A move source, either a search, a random generator or a person.
// Agents aren't safe for concurrent use, Clone gives an independent copy.
type Agent interface {
	// Choose a move for the side to move, NoMove if the game is already over
	SelectMove(pos *ttt.Position) ttt.Move
	// Number of search nodes visited since the last Reset
	NodesVisited() int
	// Clear the node counter and any cached search state
	Reset()
	Name() string
	Clone() Agent
}

// Asking for a move on a finished game is a caller error, agents refuse it
func checkPlayable(name string, pos *ttt.Position) bool {
	if !pos.IsTerminated() {
		return true
	}

	err := errors.Wrapf(ErrNoLegalMoves, "%s: game is over (%s)", name, pos.Termination())
	log.Warn().Err(err).Str("position", pos.Notation()).Msg("select-move-on-finished-game")
	return false
}
