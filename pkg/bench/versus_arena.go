package bench

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-negamax/pkg/agent"
	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

/*
Arena benchmark, plays a series of games between two agents,
spread over worker goroutines. Every worker plays with its own clones
of the agents, sides are assigned by a coin toss before each game.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  agent.Agent
	Player2  agent.Agent
	NGames   int
	NWorkers int
	Position *ttt.Position
	ctx      context.Context
	group    *errgroup.Group
	listener ListenerLike
}

func NewVersusArena(p1, p2 agent.Agent) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NWorkers: 2,
		Position: ttt.NewPosition(),
		ctx:      context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames, nWorkers int) *VersusArena {
	va.NGames = max(nGames, 0)
	va.NWorkers = max(nWorkers, 1)
	return va
}

// Starting position of every game
func (va *VersusArena) SetPosition(pos *ttt.Position) *VersusArena {
	va.Position = pos
	return va
}

// Start equally distributed work between the workers, call Wait for the results
func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = DefaultListener{}
	}
	va.VersusArenaStats = VersusArenaStats{}
	va.listener = listener

	group, ctx := errgroup.WithContext(va.ctx)
	va.group = group
	listener.OnStart()

	nGames := va.NGames / va.NWorkers
	rest := va.NGames % va.NWorkers
	for id := range va.NWorkers {
		n := nGames
		if id < rest {
			n++
		}

		// Always use a clone, agents aren't safe for concurrent use
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		group.Go(func() error {
			return va.worker(ctx, id, n, listener, p1, p2)
		})
	}
}

// Wait for the workers, returns the first error encountered
func (va *VersusArena) Wait() (VersusSummaryInfo, error) {
	err := va.group.Wait()

	summary := va.Summary()
	va.listener.Summary(summary)
	va.listener.OnEnd()
	return summary, err
}

// Start and Wait
func (va *VersusArena) Run(listener ListenerLike) (VersusSummaryInfo, error) {
	va.Start(listener)
	return va.Wait()
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          va.NWorkers,
		P1Name:           va.Player1.Name(),
		P2Name:           va.Player2.Name(),
	}
}

func (va *VersusArena) worker(ctx context.Context, id, nGames int, listener ListenerLike, p1, p2 agent.Agent) error {
	local := VersusArenaStats{}
	info := VersusWorkerInfo{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   p1.Name(),
		P2Name:   p2.Name(),
	}

	for i := range nGames {
		if err := ctx.Err(); err != nil {
			return err
		}

		switched := frand.Intn(2) == 1
		first, second := p1, p2
		if switched {
			first, second = p2, p1
		}
		first.Reset()
		second.Reset()

		info.FinishedGames = i
		info.Record = nil
		info.Moves = nil
		info.GameMoveNum = 0
		listener.OnGameStart(info)

		record, err := playMatch(ctx, first, second, va.Position, func(moves []ttt.Move) {
			info.Moves = moves
			info.GameMoveNum = len(moves)
			listener.OnMoveMade(info)
		})
		if err != nil {
			return errors.Wrapf(err, "worker %d, game %d", id, i)
		}

		result := record.Result
		if switched {
			result = -result
		}
		va.add(result, record.Result)
		local.add(result, record.Result)

		info.FinishedGames = i + 1
		info.Record = &record
		info.P1Wins = local.P1Wins()
		info.P2Wins = local.P2Wins()
		info.Draws = local.Draws()
		listener.OnFinishedGame(info)
	}

	listener.OnFinishedWork(info)
	return nil
}
