// Package paging simulates page-replacement policies over a fixed-size frame
// table.
package paging

import (
	"github.com/sarchlab/pagesim/trace"
	"github.com/sirupsen/logrus"
)

// A Simulator owns a frame table and processes accesses one at a time. Each
// simulator is independent, so several of them can run in one process.
type Simulator struct {
	*HookableBase

	strategy Strategy
	table    *Table
	finder   VictimFinder
	trace    *trace.Trace
	stats    Stats
	now      int
	logger   *logrus.Logger
}

// Name returns the name of the replacement strategy.
func (s *Simulator) Name() string {
	return s.strategy.String()
}

// Strategy returns the configured replacement strategy.
func (s *Simulator) Strategy() Strategy {
	return s.strategy
}

// Now returns the simulated time, which is the number of accesses processed.
func (s *Simulator) Now() int {
	return s.now
}

// Stats returns the counters collected so far.
func (s *Simulator) Stats() Stats {
	return s.stats
}

// Table returns the frame table.
func (s *Simulator) Table() *Table {
	return s.table
}

// Run processes the rest of the configured trace and returns the final
// statistics.
func (s *Simulator) Run() Stats {
	if s.trace == nil {
		return s.stats
	}

	for s.now < s.trace.Len() {
		s.Access(s.trace.At(s.now))
	}

	s.logger.WithFields(logrus.Fields{
		"strategy": s.Name(),
		"accesses": s.stats.Accesses,
		"misses":   s.stats.Misses,
		"writes":   s.stats.Writes,
		"drops":    s.stats.Drops,
	}).Debug("simulation finished")

	return s.stats
}

// Access processes one entry at the current time and advances the time. It
// returns true if the page was already resident.
func (s *Simulator) Access(e trace.Entry) bool {
	index, hit := s.table.FindOccupied(e.PFN)

	if hit {
		s.table.Touch(index, s.now, e.IsWrite())
	} else {
		s.stats.Misses++
		s.load(e)
	}

	s.InvokeHook(HookCtx{
		Domain: s,
		Pos:    HookPosAccess,
		Item: AccessEvent{
			Time: s.now,
			PFN:  e.PFN,
			Kind: e.Kind,
			Hit:  hit,
		},
	})

	s.stats.Accesses++
	s.now++

	return hit
}

func (s *Simulator) load(e trace.Entry) {
	index, ok := s.table.FindFree()
	if !ok {
		index = s.evict(e.PFN)
	}

	s.table.Load(index, e.PFN, e.IsWrite(), s.now)
}

func (s *Simulator) evict(incoming uint64) int {
	index := s.finder.FindVictim(s.table, s.now)

	victim := s.table.Frame(index)
	if !victim.IsValid {
		panic("victim finder returned an unoccupied frame")
	}

	if victim.IsDirty {
		s.stats.Writes++
	} else {
		s.stats.Drops++
	}

	s.InvokeHook(HookCtx{
		Domain: s,
		Pos:    HookPosEviction,
		Item: EvictionEvent{
			Time:         s.now,
			Incoming:     incoming,
			Evicted:      victim.PFN,
			EvictedDirty: victim.IsDirty,
			Frame:        index,
		},
	})

	s.table.Free(index)

	return index
}
