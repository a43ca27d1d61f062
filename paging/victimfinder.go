package paging

import (
	"fmt"
	"math/rand"
)

// A VictimFinder decides which frame should be evicted. It is only called
// when no free frame is left, and it must return the index of an occupied
// frame.
type VictimFinder interface {
	FindVictim(table *Table, now int) int
}

// A Lookahead can tell when a page will be accessed next.
type Lookahead interface {
	NextUse(pfn uint64, after int) (int, bool)
}

func mustHaveOccupiedFrame(table *Table, finder string) {
	if table.NumOccupied() == 0 {
		panic(fmt.Sprintf("%s victim finder called on an empty frame table",
			finder))
	}
}

// OPTVictimFinder evicts the page that is used farthest in the future. It
// needs to see the trace, so it cannot be realized in a real system.
type OPTVictimFinder struct {
	future Lookahead
}

// NewOPTVictimFinder creates an OPT victim finder that looks ahead in the
// given trace.
func NewOPTVictimFinder(future Lookahead) *OPTVictimFinder {
	return &OPTVictimFinder{future: future}
}

// FindVictim returns the first frame whose page is never used again, or the
// frame whose page is used farthest in the future.
func (f *OPTVictimFinder) FindVictim(table *Table, now int) int {
	victim, farthest := -1, -1

	for i := 0; i < table.Capacity(); i++ {
		frame := table.Frame(i)
		if !frame.IsValid {
			continue
		}

		next, ok := f.future.NextUse(frame.PFN, now)
		if !ok {
			return i
		}

		if next > farthest {
			victim, farthest = i, next
		}
	}

	if victim < 0 {
		panic("OPT victim finder found no candidate")
	}

	return victim
}

// FIFOVictimFinder evicts the page that was loaded first.
type FIFOVictimFinder struct{}

// NewFIFOVictimFinder creates a FIFO victim finder.
func NewFIFOVictimFinder() *FIFOVictimFinder {
	return &FIFOVictimFinder{}
}

// FindVictim returns the occupied frame with the smallest entry time.
func (f *FIFOVictimFinder) FindVictim(table *Table, now int) int {
	return oldestFrame(table, "FIFO", func(fr Frame) int {
		return fr.EntryTime
	})
}

// LRUVictimFinder evicts the least recently used page.
type LRUVictimFinder struct{}

// NewLRUVictimFinder returns a newly constructed LRU victim finder.
func NewLRUVictimFinder() *LRUVictimFinder {
	return &LRUVictimFinder{}
}

// FindVictim returns the occupied frame with the smallest last-access time.
func (f *LRUVictimFinder) FindVictim(table *Table, now int) int {
	return oldestFrame(table, "LRU", func(fr Frame) int {
		return fr.LastAccessTime
	})
}

// oldestFrame picks the occupied frame with the smallest key. Ties go to the
// lowest index.
func oldestFrame(table *Table, finder string, key func(Frame) int) int {
	victim, oldest := -1, 0

	for i := 0; i < table.Capacity(); i++ {
		frame := table.Frame(i)
		if !frame.IsValid {
			continue
		}

		if victim < 0 || key(frame) < oldest {
			victim, oldest = i, key(frame)
		}
	}

	if victim < 0 {
		panic(fmt.Sprintf("%s victim finder found no candidate", finder))
	}

	return victim
}

// ClockVictimFinder implements the second-chance algorithm. The hand
// persists across calls and is never reset.
type ClockVictimFinder struct {
	hand int
}

// NewClockVictimFinder creates a CLOCK victim finder with the hand at frame 0.
func NewClockVictimFinder() *ClockVictimFinder {
	return &ClockVictimFinder{}
}

// Hand returns the frame that the hand currently points to.
func (f *ClockVictimFinder) Hand() int {
	return f.hand
}

// FindVictim clears the reference bit of every referenced frame under the
// hand until it reaches one that is not referenced. That frame is the victim
// and the hand moves one position past it.
func (f *ClockVictimFinder) FindVictim(table *Table, now int) int {
	mustHaveOccupiedFrame(table, "CLOCK")

	n := table.Capacity()

	for {
		frame := table.Frame(f.hand)

		if frame.IsValid && !frame.IsReferenced {
			break
		}

		if frame.IsValid {
			table.setReferenced(f.hand, false)
		}

		f.hand = (f.hand + 1) % n
	}

	victim := f.hand
	f.hand = (f.hand + 1) % n

	return victim
}

// DefaultRandomSeed is the seed used when no seed is configured.
const DefaultRandomSeed = 5635

// RandomVictimFinder evicts a uniformly chosen occupied frame.
type RandomVictimFinder struct {
	rng *rand.Rand
}

// NewRandomVictimFinder creates a RANDOM victim finder. The same seed always
// produces the same sequence of victims.
func NewRandomVictimFinder(seed int64) *RandomVictimFinder {
	return &RandomVictimFinder{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// FindVictim draws frame indices until it draws an occupied one.
func (f *RandomVictimFinder) FindVictim(table *Table, now int) int {
	mustHaveOccupiedFrame(table, "RANDOM")

	for {
		i := f.rng.Intn(table.Capacity())
		if table.Frame(i).IsValid {
			return i
		}
	}
}
