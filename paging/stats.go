package paging

import "fmt"

// Stats holds the counters of a simulation. All counters only grow.
type Stats struct {
	Accesses int
	Misses   int
	Writes   int
	Drops    int
}

// Hits returns the number of accesses that found their page resident.
func (s Stats) Hits() int {
	return s.Accesses - s.Misses
}

// Evictions returns the number of pages removed from the frame table.
func (s Stats) Evictions() int {
	return s.Writes + s.Drops
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"accesses=%d misses=%d writes=%d drops=%d",
		s.Accesses, s.Misses, s.Writes, s.Drops)
}
