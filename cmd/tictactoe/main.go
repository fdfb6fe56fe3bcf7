package main

/*
Tic-tac-toe solver command line.

Modes:
  - bench: time the first agent's move selection on the empty board
  - match: play a single game between two agents, showing every move
  - arena: play many games between two agents on worker goroutines
  - eval:  solve a position given in notation, e.g. -position "x../.o./..."

Agents: human, perfect, plain, random, threat
*/

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-negamax/pkg/agent"
	"github.com/IlikeChooros/go-negamax/pkg/bench"
	"github.com/IlikeChooros/go-negamax/pkg/negamax"
	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

type options struct {
	mode     string
	p1, p2   string
	trials   int
	games    int
	workers  int
	seed     int64
	position string
	nodes    uint
	movetime int
	logLevel string
	noColor  bool
}

func parseFlags() options {
	opts := options{}
	agents := strings.Join(agent.Names(), ", ")

	flag.StringVar(&opts.mode, "mode", "bench", "bench, match, arena or eval")
	flag.StringVar(&opts.p1, "p1", "perfect", "first agent: "+agents)
	flag.StringVar(&opts.p2, "p2", "random", "second agent: "+agents)
	flag.IntVar(&opts.trials, "trials", 10000, "number of benchmark trials")
	flag.IntVar(&opts.games, "games", 100, "number of arena games")
	flag.IntVar(&opts.workers, "workers", 4, "number of arena workers")
	flag.Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "seed of the random agents")
	flag.StringVar(&opts.position, "position", ttt.StartingPosition, "position to start from, rows separated by '/'")
	flag.UintVar(&opts.nodes, "nodes", 0, "node limit per search, 0 for none")
	flag.IntVar(&opts.movetime, "movetime", 0, "time limit per search in ms, 0 for none")
	flag.StringVar(&opts.logLevel, "log-level", "info", "trace, debug, info, warn, error")
	flag.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flag.Parse()

	return opts
}

func setupLogger(level string, noColor bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})

	if err != nil {
		log.Warn().Err(err).Str("level", level).Msg("invalid-log-level")
	}
}

func (opts options) limits() *negamax.Limits {
	limits := negamax.DefaultLimits()
	if opts.nodes > 0 {
		limits.SetNodes(uint32(opts.nodes))
	}
	if opts.movetime > 0 {
		limits.SetMovetime(opts.movetime)
	}
	return limits
}

func (opts options) agents() (agent.Agent, agent.Agent, error) {
	cfg := agent.Config{
		Seed:   opts.seed,
		Limits: opts.limits(),
		In:     os.Stdin,
		Out:    os.Stdout,
	}

	p1, err := agent.New(opts.p1, cfg)
	if err != nil {
		return nil, nil, err
	}

	// Different seed, so two random agents don't mirror each other
	cfg.Seed++
	p2, err := agent.New(opts.p2, cfg)
	if err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}

func main() {
	opts := parseFlags()
	setupLogger(opts.logLevel, opts.noColor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, newRenderer(os.Stdout, opts.noColor)); err != nil {
		log.Error().Err(err).Str("mode", opts.mode).Msg("failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, r *renderer) error {
	start, err := ttt.ParseNotation(opts.position)
	if err != nil {
		return err
	}

	if opts.mode == "eval" {
		return runEval(start, opts, r)
	}

	p1, p2, err := opts.agents()
	if err != nil {
		return err
	}

	switch opts.mode {
	case "bench":
		return runBench(p1, opts, r)
	case "match":
		return runMatch(ctx, p1, p2, start, r)
	case "arena":
		return runArena(ctx, p1, p2, start, opts, r)
	}
	return errors.Errorf("unknown mode %q", opts.mode)
}

func runEval(pos *ttt.Position, opts options, r *renderer) error {
	perfect := agent.NewPerfectAgent(0)
	perfect.Engine().SetLimits(opts.limits())
	result := perfect.Search(pos)

	r.printBoard(pos, ttt.NoMove)
	fmt.Fprintf(r.out, "%s %s\n", r.title("to move:"), pos.Turn().Player())
	fmt.Fprintf(r.out, "%s %s\n", r.title("result:"), result)
	fmt.Fprintf(r.out, "%s %s\n", r.title("table:"), result.Table)
	return nil
}

func runBench(a agent.Agent, opts options, r *renderer) error {
	result := bench.Benchmark(a, opts.trials)
	fmt.Fprintf(r.out, "%s %s\n", r.title("benchmark:"), result)
	return nil
}

func runMatch(ctx context.Context, p1, p2 agent.Agent, start *ttt.Position, r *renderer) error {
	record, err := bench.PlayMatch(ctx,
		displayAgent{Agent: p1, r: r},
		displayAgent{Agent: p2, r: r},
		start,
	)
	if err != nil {
		return err
	}

	final := record.Position()
	last := ttt.NoMove
	if len(record.Moves) > 0 {
		last = record.Moves[len(record.Moves)-1]
	}

	fmt.Fprintln(r.out)
	r.printBoard(final, last)
	fmt.Fprintf(r.out, "%s %s (%s), %d moves in %dus, game %s\n",
		r.title("result:"), record.Result, record.Termination, len(record.Moves),
		record.Duration.Microseconds(), record.ID)
	return nil
}

func runArena(ctx context.Context, p1, p2 agent.Agent, start *ttt.Position, opts options, r *renderer) error {
	// Human clones share one input, workers would read it concurrently
	if opts.workers > 1 && (p1.Name() == "human" || p2.Name() == "human") {
		return errors.Errorf("human agent plays on a single arena worker, got %d workers", opts.workers)
	}

	arena := bench.NewVersusArena(p1, p2).
		Setup(opts.games, opts.workers).
		SetPosition(start).
		WithContext(ctx)

	summary, err := arena.Run(bench.LogListener{})
	fmt.Fprintf(r.out, "%s %s\n", r.title("summary:"), summary)
	return err
}
