package paging

import (
	"errors"
	"fmt"

	"github.com/sarchlab/pagesim/trace"
	"github.com/sirupsen/logrus"
)

// Configuration errors reported by Build.
var (
	ErrInvalidCapacity = errors.New("frame count must be positive")
	ErrMissingTrace    = errors.New("strategy needs the trace to look ahead")
)

// Builder can build simulators.
type Builder struct {
	capacity int
	strategy Strategy
	seed     int64
	trace    *trace.Trace
	finder   VictimFinder
	logger   *logrus.Logger
}

// MakeBuilder creates a new builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		capacity: 16,
		strategy: LRU,
		seed:     DefaultRandomSeed,
	}
}

// WithCapacity sets the number of frames.
func (b Builder) WithCapacity(capacity int) Builder {
	b.capacity = capacity
	return b
}

// WithStrategy sets the replacement policy.
func (b Builder) WithStrategy(strategy Strategy) Builder {
	b.strategy = strategy
	return b
}

// WithSeed sets the seed used by the RANDOM policy.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	return b
}

// WithTrace sets the trace that the simulator runs. OPT uses the same trace
// for its lookahead.
func (b Builder) WithTrace(t *trace.Trace) Builder {
	b.trace = t
	return b
}

// WithVictimFinder replaces the finder selected by the strategy. The strategy
// is then only used as the name of the run.
func (b Builder) WithVictimFinder(finder VictimFinder) Builder {
	b.finder = finder
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(logger *logrus.Logger) Builder {
	b.logger = logger
	return b
}

// Build creates a simulator. All configuration errors are reported here,
// before any access is processed.
func (b Builder) Build() (*Simulator, error) {
	if b.capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, b.capacity)
	}

	if !b.strategy.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, b.strategy)
	}

	finder := b.finder
	if finder == nil {
		var err error

		finder, err = b.makeVictimFinder()
		if err != nil {
			return nil, err
		}
	}

	logger := b.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &Simulator{
		HookableBase: NewHookableBase(),
		strategy:     b.strategy,
		table:        NewTable(b.capacity),
		finder:       finder,
		trace:        b.trace,
		logger:       logger,
	}

	logger.WithFields(logrus.Fields{
		"strategy": b.strategy.String(),
		"frames":   b.capacity,
		"seed":     b.seed,
	}).Debug("simulator built")

	return s, nil
}

func (b Builder) makeVictimFinder() (VictimFinder, error) {
	switch b.strategy {
	case OPT:
		if b.trace == nil {
			return nil, ErrMissingTrace
		}

		return NewOPTVictimFinder(b.trace), nil
	case FIFO:
		return NewFIFOVictimFinder(), nil
	case CLOCK:
		return NewClockVictimFinder(), nil
	case LRU:
		return NewLRUVictimFinder(), nil
	case RANDOM:
		return NewRandomVictimFinder(b.seed), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, b.strategy)
	}
}
