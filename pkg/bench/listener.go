package bench

import (
	"github.com/rs/zerolog/log"
)

// Arena callbacks, invoked from the worker goroutines concurrently,
// implementations must be safe for concurrent use
type ListenerLike interface {
	OnStart()
	OnGameStart(info VersusWorkerInfo)
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
	OnEnd()
}

type DefaultListener struct{}

func (DefaultListener) OnStart()                        {}
func (DefaultListener) OnGameStart(VersusWorkerInfo)    {}
func (DefaultListener) OnMoveMade(VersusWorkerInfo)     {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}
func (DefaultListener) OnEnd()                          {}

// Logs finished games and the summary with the global logger
type LogListener struct {
	DefaultListener
}

func (LogListener) OnFinishedGame(info VersusWorkerInfo) {
	if info.Record == nil {
		return
	}

	log.Info().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Str("id", info.Record.ID.String()).
		Str("first", info.Record.FirstName).
		Stringer("result", info.Record.Result).
		Stringer("termination", info.Record.Termination).
		Msg("game-finished")
}

func (LogListener) OnFinishedWork(info VersusWorkerInfo) {
	log.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.NGames).
		Int("p1-wins", info.P1Wins).
		Int("p2-wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker-finished")
}

func (LogListener) Summary(summary VersusSummaryInfo) {
	log.Info().
		Str("player1", summary.P1Name).
		Str("player2", summary.P2Name).
		Int("games", summary.TotalGames).
		Int("p1-wins", summary.P1Wins).
		Int("p2-wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Int("first-to-move-wins", summary.FirstToMoveWins).
		Msg("arena-summary")
}
