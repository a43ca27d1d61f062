package paging

// A Frame is a slot of physical memory that can hold one page.
type Frame struct {
	PFN            uint64
	EntryTime      int
	LastAccessTime int
	IsValid        bool
	IsDirty        bool
	IsReferenced   bool
}

// A Table is the fixed-size array of frames. Frames are never reallocated;
// only their contents change. The index of a frame is its identity.
type Table struct {
	frames []Frame
}

// NewTable creates a table with all frames unoccupied.
func NewTable(capacity int) *Table {
	if capacity < 1 {
		panic("frame table capacity must be at least 1")
	}

	return &Table{
		frames: make([]Frame, capacity),
	}
}

// Capacity returns the number of frames.
func (t *Table) Capacity() int {
	return len(t.frames)
}

// Frame returns a copy of the frame at the given index.
func (t *Table) Frame(index int) Frame {
	return t.frames[index]
}

// NumOccupied returns how many frames currently hold a page.
func (t *Table) NumOccupied() int {
	n := 0

	for _, f := range t.frames {
		if f.IsValid {
			n++
		}
	}

	return n
}

// FindOccupied returns the index of the frame that holds the page.
func (t *Table) FindOccupied(pfn uint64) (int, bool) {
	for i, f := range t.frames {
		if f.IsValid && f.PFN == pfn {
			return i, true
		}
	}

	return -1, false
}

// FindFree returns the lowest-indexed unoccupied frame.
func (t *Table) FindFree() (int, bool) {
	for i, f := range t.frames {
		if !f.IsValid {
			return i, true
		}
	}

	return -1, false
}

// Load places a page into a frame.
func (t *Table) Load(index int, pfn uint64, dirty bool, now int) {
	t.frames[index] = Frame{
		PFN:            pfn,
		EntryTime:      now,
		LastAccessTime: now,
		IsValid:        true,
		IsDirty:        dirty,
		IsReferenced:   true,
	}
}

// Touch records a hit on the frame. The dirty bit only clears when the frame
// is reused.
func (t *Table) Touch(index int, now int, isWrite bool) {
	f := &t.frames[index]

	f.LastAccessTime = now
	f.IsReferenced = true

	if isWrite {
		f.IsDirty = true
	}
}

// Free marks the frame unoccupied.
func (t *Table) Free(index int) {
	t.frames[index].IsValid = false
}

func (t *Table) setReferenced(index int, referenced bool) {
	t.frames[index].IsReferenced = referenced
}
