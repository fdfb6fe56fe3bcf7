package bench

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-negamax/pkg/agent"
	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

// A single finished game
type GameRecord struct {
	ID          uuid.UUID
	Start       string // notation of the starting position
	FirstName   string
	SecondName  string
	Moves       []ttt.Move
	Termination ttt.Termination
	Result      VersusMatchResult // from the first mover's perspective
	Duration    time.Duration
}

// Final position of the game
func (r *GameRecord) Position() *ttt.Position {
	pos, err := ttt.ParseNotation(r.Start)
	if err != nil {
		return nil
	}
	for _, m := range r.Moves {
		pos.Play(m)
	}
	return pos
}

// Play a game from the start position, 'first' moves first.
// The start position isn't modified. Fails if an agent returns an
// illegal move (or NoMove) or the context is cancelled.
func PlayMatch(ctx context.Context, first, second agent.Agent, start *ttt.Position) (GameRecord, error) {
	return playMatch(ctx, first, second, start, nil)
}

func playMatch(
	ctx context.Context, first, second agent.Agent, start *ttt.Position,
	onMove func(moves []ttt.Move),
) (GameRecord, error) {
	record := GameRecord{
		ID:         uuid.New(),
		Start:      start.Notation(),
		FirstName:  first.Name(),
		SecondName: second.Name(),
		Moves:      make([]ttt.Move, 0, ttt.NumCells),
	}

	pos := *start
	agents := [2]agent.Agent{first, second}
	startTime := time.Now()

	for turn := 0; !pos.IsTerminated(); turn ^= 1 {
		if err := ctx.Err(); err != nil {
			return record, err
		}

		a := agents[turn]
		move := a.SelectMove(&pos)
		if err := pos.MakeLegalMove(move); err != nil {
			return record, errors.Wrapf(err, "%s at %s", a.Name(), pos.Notation())
		}

		record.Moves = append(record.Moves, move)
		if onMove != nil {
			onMove(record.Moves)
		}
	}

	record.Duration = time.Since(startTime)
	record.Termination = pos.Termination()
	switch pos.Winner() {
	case ttt.None:
		record.Result = VersusDraw
	case start.Turn().Player():
		record.Result = VersusPl1Win
	default:
		record.Result = VersusPl2Win
	}

	log.Debug().
		Str("id", record.ID.String()).
		Str("first", record.FirstName).
		Str("second", record.SecondName).
		Int("moves", len(record.Moves)).
		Stringer("result", record.Result).
		Msg("match-finished")

	return record, nil
}
