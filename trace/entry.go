// Package trace defines memory-access traces and reads them from files.
package trace

import (
	"sort"
	"sync"
)

// AccessKind tells whether an access reads or writes the page.
type AccessKind int

// The kinds of accesses that a trace can contain.
const (
	Read AccessKind = iota
	Write
)

func (k AccessKind) String() string {
	if k == Write {
		return "W"
	}

	return "R"
}

// An Entry is one memory access, already reduced to a page-frame number.
type Entry struct {
	PFN  uint64
	Kind AccessKind
}

// IsWrite returns true if the access dirties the page.
func (e Entry) IsWrite() bool {
	return e.Kind == Write
}

// A Trace is an immutable, ordered sequence of accesses. The index of an
// entry in the trace is the simulated time at which it is processed.
type Trace struct {
	entries []Entry

	indexOnce   sync.Once
	occurrences map[uint64][]int
}

// New creates a trace from a list of entries. The entries are copied.
func New(entries []Entry) *Trace {
	t := &Trace{
		entries: make([]Entry, len(entries)),
	}
	copy(t.entries, entries)

	return t
}

// Len returns the number of entries in the trace.
func (t *Trace) Len() int {
	return len(t.entries)
}

// At returns the entry processed at time i.
func (t *Trace) At(i int) Entry {
	return t.entries[i]
}

// Entries returns a copy of all the entries.
func (t *Trace) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)

	return entries
}

// DistinctPages returns how many different pages the trace touches.
func (t *Trace) DistinctPages() int {
	t.buildIndex()
	return len(t.occurrences)
}

// NextUse returns the first time strictly after the given time at which the
// page is accessed. It returns false if the page is never accessed again.
func (t *Trace) NextUse(pfn uint64, after int) (int, bool) {
	t.buildIndex()

	times := t.occurrences[pfn]
	i := sort.SearchInts(times, after+1)

	if i == len(times) {
		return 0, false
	}

	return times[i], true
}

func (t *Trace) buildIndex() {
	t.indexOnce.Do(func() {
		t.occurrences = make(map[uint64][]int)
		for i, e := range t.entries {
			t.occurrences[e.PFN] = append(t.occurrences[e.PFN], i)
		}
	})
}
