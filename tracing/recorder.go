package tracing

import (
	"github.com/sarchlab/pagesim/datarecording"
	"github.com/sarchlab/pagesim/paging"
)

// EvictionTable is the table that holds recorded evictions.
const EvictionTable = "evictions"

// EvictionEntry is a row of the eviction table.
type EvictionEntry struct {
	Strategy string
	Time     int
	Incoming uint64
	Evicted  uint64
	Dirty    bool
	Frame    int
}

// An EvictionRecorder stores every eviction into a DataRecorder.
type EvictionRecorder struct {
	recorder datarecording.DataRecorder
}

// NewEvictionRecorder creates an EvictionRecorder and its table.
func NewEvictionRecorder(
	recorder datarecording.DataRecorder,
) *EvictionRecorder {
	recorder.CreateTable(EvictionTable, EvictionEntry{})

	return &EvictionRecorder{recorder: recorder}
}

// Func records the eviction.
func (r *EvictionRecorder) Func(ctx paging.HookCtx) {
	if ctx.Pos != paging.HookPosEviction {
		return
	}

	e := ctx.Item.(paging.EvictionEvent)

	r.recorder.InsertData(EvictionTable, EvictionEntry{
		Strategy: domainName(ctx),
		Time:     e.Time,
		Incoming: e.Incoming,
		Evicted:  e.Evicted,
		Dirty:    e.EvictedDirty,
		Frame:    e.Frame,
	})
}
