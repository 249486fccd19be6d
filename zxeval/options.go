package zxeval

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/zxeval/stabilizer"
)

// Option configures Evaluate and Analyze.
type Option func(*config)

type config struct {
	logger    *log.Logger
	rng       *rand.Rand
	simulator func() stabilizer.Simulator
}

// WithLogger sends debug records about each evaluation stage to l.
// Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("zxeval: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithRand seeds the default simulator's measurement outcomes.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("zxeval: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSimulator replaces the stabilizer.Tableau used by Analyze. newSim is
// called once per run and must return a fresh instance each time.
// Panics on nil.
func WithSimulator(newSim func() stabilizer.Simulator) Option {
	if newSim == nil {
		panic("zxeval: WithSimulator(nil)")
	}

	return func(c *config) { c.simulator = newSim }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.simulator == nil {
		c.simulator = func() stabilizer.Simulator {
			if c.rng == nil {
				return stabilizer.NewTableau()
			}

			return stabilizer.NewTableau(stabilizer.WithRand(c.rng))
		}
	}

	return c
}
