package tracing

import (
	"fmt"
	"io"

	"github.com/sarchlab/pagesim/paging"
)

// A VerbosePrinter prints one line for every eviction.
type VerbosePrinter struct {
	w io.Writer
}

// NewVerbosePrinter creates a VerbosePrinter that writes to w.
func NewVerbosePrinter(w io.Writer) *VerbosePrinter {
	return &VerbosePrinter{w: w}
}

// Func prints the eviction.
func (p *VerbosePrinter) Func(ctx paging.HookCtx) {
	if ctx.Pos != paging.HookPosEviction {
		return
	}

	e := ctx.Item.(paging.EvictionEvent)

	if e.EvictedDirty {
		fmt.Fprintf(p.w,
			"Page 0x%05X was read from disk, "+
				"page 0x%05X was written to the disk.\n",
			e.Incoming, e.Evicted)

		return
	}

	fmt.Fprintf(p.w,
		"Page 0x%05X was read from disk, "+
			"page 0x%05X was dropped (it was not dirty).\n",
		e.Incoming, e.Evicted)
}
