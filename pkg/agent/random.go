package agent

import (
	"math/rand"

	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

// Plays a uniformly random legal move
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed int64) *RandomAgent {
	return NewRandomAgentFrom(rand.New(rand.NewSource(seed)))
}

// Use given random source, the agent takes ownership of it
func NewRandomAgentFrom(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) SelectMove(pos *ttt.Position) ttt.Move {
	if !checkPlayable(a.Name(), pos) {
		return ttt.NoMove
	}

	moves := pos.GenerateMoves()
	return moves.Moves[a.rng.Intn(int(moves.Size))]
}

func (a *RandomAgent) NodesVisited() int {
	return 0
}

func (a *RandomAgent) Reset() {}

func (a *RandomAgent) Name() string {
	return "random"
}

// The clone gets its own source, seeded from this agent's one
func (a *RandomAgent) Clone() Agent {
	return NewRandomAgent(a.rng.Int63())
}
