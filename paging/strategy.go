package paging

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy names a page-replacement policy.
type Strategy int

// The supported replacement policies.
const (
	OPT Strategy = iota
	FIFO
	CLOCK
	LRU
	RANDOM
)

var strategyNames = map[Strategy]string{
	OPT:    "OPT",
	FIFO:   "FIFO",
	CLOCK:  "CLOCK",
	LRU:    "LRU",
	RANDOM: "RANDOM",
}

// ErrUnknownStrategy is returned when a strategy name or value is not one of
// the supported policies.
var ErrUnknownStrategy = errors.New("unknown replacement strategy")

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{OPT, FIFO, CLOCK, LRU, RANDOM}
}

func (s Strategy) String() string {
	name, ok := strategyNames[s]
	if !ok {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return name
}

// IsValid returns true if the strategy is one of the supported policies.
func (s Strategy) IsValid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy converts a name such as "LRU" or "clock" into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))

	for s, n := range strategyNames {
		if n == upper {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
