package bench

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/IlikeChooros/go-negamax/pkg/agent"
	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

type BenchmarkResult struct {
	Agent  string
	Trials int
	Total  time.Duration
	Nodes  []int      // per trial
	Moves  []ttt.Move // per trial
}

func (r BenchmarkResult) Average() time.Duration {
	if r.Trials == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Trials)
}

func (r BenchmarkResult) AverageNodes() float64 {
	if len(r.Nodes) == 0 {
		return 0
	}
	return float64(lo.Sum(r.Nodes)) / float64(len(r.Nodes))
}

// Every trial visited the same number of nodes and chose the same move
func (r BenchmarkResult) Deterministic() bool {
	return len(lo.Uniq(r.Nodes)) <= 1 && len(lo.Uniq(r.Moves)) <= 1
}

func (r BenchmarkResult) String() string {
	return fmt.Sprintf("%s: %d trials, average time %dus, average nodes %.1f, deterministic %v",
		r.Agent, r.Trials, r.Average().Microseconds(), r.AverageNodes(), r.Deterministic())
}

// Time the agent's move selection on the empty board,
// the agent is reset after every trial
func Benchmark(a agent.Agent, trials int) BenchmarkResult {
	result := BenchmarkResult{
		Agent:  a.Name(),
		Trials: trials,
		Nodes:  make([]int, 0, trials),
		Moves:  make([]ttt.Move, 0, trials),
	}

	pos := ttt.NewPosition()
	for range trials {
		start := time.Now()
		move := a.SelectMove(pos)
		result.Total += time.Since(start)

		result.Moves = append(result.Moves, move)
		result.Nodes = append(result.Nodes, a.NodesVisited())
		a.Reset()
	}

	log.Info().
		Str("agent", result.Agent).
		Int("trials", trials).
		Dur("average", result.Average()).
		Float64("nodes", result.AverageNodes()).
		Bool("deterministic", result.Deterministic()).
		Msg("benchmark-finished")

	return result
}
