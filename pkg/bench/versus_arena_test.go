package bench

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/pkg/errors"

	"github.com/IlikeChooros/go-negamax/pkg/agent"
	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

// Always plays the center, legal only once
type centerAgent struct{}

func (centerAgent) SelectMove(*ttt.Position) ttt.Move { return ttt.CellMask(ttt.B2) }
func (centerAgent) NodesVisited() int                 { return 0 }
func (centerAgent) Reset()                            {}
func (centerAgent) Name() string                      { return "center" }
func (a centerAgent) Clone() agent.Agent              { return a }

type countingListener struct {
	DefaultListener
	started, moves, games, workers, summaries atomic.Int32
}

func (l *countingListener) OnGameStart(VersusWorkerInfo) { l.started.Add(1) }
func (l *countingListener) OnMoveMade(VersusWorkerInfo)  { l.moves.Add(1) }
func (l *countingListener) OnFinishedGame(info VersusWorkerInfo) {
	if info.Record != nil {
		l.games.Add(1)
	}
}
func (l *countingListener) OnFinishedWork(VersusWorkerInfo) { l.workers.Add(1) }
func (l *countingListener) Summary(VersusSummaryInfo)       { l.summaries.Add(1) }

func TestPlayMatchPerfect(t *testing.T) {
	is := is.New(t)

	record, err := PlayMatch(context.Background(), agent.NewPerfectAgent(0), agent.NewPerfectAgent(0), ttt.NewPosition())
	is.NoErr(err)
	is.True(record.ID != uuid.Nil)
	is.Equal(record.Result, VersusDraw)
	is.Equal(record.Termination, ttt.TerminationDraw)
	is.Equal(len(record.Moves), ttt.NumCells)
	is.Equal(record.Moves[0], ttt.CellMask(ttt.B2))
	is.True(record.Position().IsDraw())
}

func TestPlayMatchFromPosition(t *testing.T) {
	is := is.New(t)

	// Circle to move, can win on c2
	start, err := ttt.ParseNotation("xx./oo./x..")
	is.NoErr(err)
	before := *start

	record, err := PlayMatch(context.Background(), agent.NewPerfectAgent(0), agent.NewRandomAgent(1), start)
	is.NoErr(err)
	is.Equal(*start, before) // start position untouched
	is.Equal(record.Moves, []ttt.Move{ttt.CellMask(ttt.C2)})
	is.Equal(record.Result, VersusPl1Win)
	is.Equal(record.Termination, ttt.TerminationCircleWon)
	is.Equal(record.Start, "xx./oo./x..")
}

func TestPlayMatchIllegalMove(t *testing.T) {
	_, err := PlayMatch(context.Background(), centerAgent{}, centerAgent{}, ttt.NewPosition())
	if !errors.Is(err, ttt.ErrIllegalMove) {
		t.Fatalf("err=%v, want ErrIllegalMove", err)
	}
}

func TestBenchmark(t *testing.T) {
	is := is.New(t)

	result := Benchmark(agent.NewPerfectAgent(0), 5)
	is.True(result.Deterministic())
	is.Equal(len(result.Nodes), 5)
	is.Equal(result.Nodes[0], 3708)
	is.Equal(result.Moves[0], ttt.CellMask(ttt.B2))
	t.Log(result)

	plain := Benchmark(agent.NewPlainAgent(nil), 3)
	is.True(plain.Deterministic())
	is.Equal(plain.Moves[0], ttt.CellMask(ttt.B2))
	is.True(plain.Nodes[0] > result.Nodes[0])
	t.Log(plain)
}

func TestVersusArena(t *testing.T) {
	is := is.New(t)
	listener := &countingListener{}

	arena := NewVersusArena(agent.NewPerfectAgent(0), agent.NewRandomAgent(42)).Setup(30, 4)
	summary, err := arena.Run(listener)
	is.NoErr(err)

	is.Equal(summary.TotalGames, 30)
	is.Equal(summary.P2Wins, 0) // perfect play never loses
	is.Equal(summary.P1Wins+summary.Draws, 30)
	is.Equal(summary.FirstToMoveWins+summary.SecondToMoveWins, summary.P1Wins)
	is.Equal(summary.Workers, 4)
	is.Equal(summary.P1Name, "perfect")

	is.Equal(listener.started.Load(), int32(30))
	is.Equal(listener.games.Load(), int32(30))
	is.Equal(listener.workers.Load(), int32(4))
	is.Equal(listener.summaries.Load(), int32(1))
	is.True(listener.moves.Load() >= 30*5)

	var decoded VersusSummaryInfo
	is.NoErr(json.Unmarshal([]byte(summary.String()), &decoded))
	is.Equal(decoded, summary)
}

func TestVersusArenaPerfectDraws(t *testing.T) {
	is := is.New(t)

	summary, err := NewVersusArena(agent.NewPerfectAgent(0), agent.NewPlainAgent(nil)).
		Setup(7, 3).
		Run(LogListener{})
	is.NoErr(err)
	is.Equal(summary.Draws, 7)
}

func TestVersusArenaCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewVersusArena(agent.NewRandomAgent(1), agent.NewRandomAgent(2)).
		Setup(10, 2).
		WithContext(ctx)

	summary, err := arena.Run(nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
	if summary.TotalGames != 0 {
		t.Errorf("TotalGames=%d after cancellation", summary.TotalGames)
	}
}

func TestVersusArenaAgentError(t *testing.T) {
	arena := NewVersusArena(centerAgent{}, centerAgent{}).Setup(4, 2)
	if _, err := arena.Run(DefaultListener{}); !errors.Is(err, ttt.ErrIllegalMove) {
		t.Fatalf("err=%v, want ErrIllegalMove", err)
	}
}
