package agent

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/IlikeChooros/go-negamax/pkg/negamax"
)

// Options shared by the agent constructors, each agent reads what it needs
type Config struct {
	Seed      int64           // random agent
	TableSize int             // perfect agent, <= 0 for the default
	Limits    *negamax.Limits // search agents, nil for no limits
	In        io.Reader       // human agent, defaults to stdin
	Out       io.Writer       // human agent, defaults to stdout
}

type factory func(cfg Config) Agent

var registry = map[string]factory{
	"perfect": func(cfg Config) Agent {
		a := NewPerfectAgent(cfg.TableSize)
		a.engine.SetLimits(cfg.Limits)
		return a
	},
	"plain": func(cfg Config) Agent {
		a := NewPlainAgent(negamax.ZeroScore)
		a.engine.SetLimits(cfg.Limits)
		return a
	},
	"threat": func(cfg Config) Agent {
		a := newPlainAgent("threat", negamax.ThreatScore)
		a.engine.SetLimits(cfg.Limits)
		return a
	},
	"random": func(cfg Config) Agent {
		return NewRandomAgent(cfg.Seed)
	},
	"human": func(cfg Config) Agent {
		in, out := cfg.In, cfg.Out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		return NewHumanAgent(in, out)
	},
}

// Create an agent by name, see Names
func New(name string, cfg Config) (Agent, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAgent, "%q, available: %s", name, strings.Join(Names(), ", "))
	}
	return f(cfg), nil
}

// Sorted names of the available agents
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}
