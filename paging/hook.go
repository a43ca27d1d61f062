package paging

import "github.com/sarchlab/pagesim/trace"

// HookPos defines the enum of possible hooking positions.
type HookPos struct {
	Name string
}

// HookPosAccess triggers after an access has been fully processed. The item
// is an AccessEvent.
var HookPosAccess = &HookPos{Name: "Access"}

// HookPosEviction triggers after a victim is chosen and before its frame is
// freed. The item is an EvictionEvent.
var HookPosEviction = &HookPos{Name: "Eviction"}

// HookCtx is the context that holds all the information about the site that
// a hook is triggered.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
}

// Hookable defines an object that accepts hooks.
type Hookable interface {
	AcceptHook(hook Hook)
	Hooks() []Hook
}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc turns a function into a Hook.
type HookFunc func(ctx HookCtx)

// Func calls f.
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}

// An AccessEvent describes one processed trace entry.
type AccessEvent struct {
	Time int
	PFN  uint64
	Kind trace.AccessKind
	Hit  bool
}

// An EvictionEvent describes a page being pushed out to make room for
// another.
type EvictionEvent struct {
	Time         int
	Incoming     uint64
	Evicted      uint64
	EvictedDirty bool
	Frame        int
}

// A HookableBase provides the bookkeeping of the Hookable interface.
type HookableBase struct {
	hooks []Hook
}

// NewHookableBase creates a HookableBase object.
func NewHookableBase() *HookableBase {
	return &HookableBase{}
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.hooks = append(h.hooks, hook)
}

// Hooks returns the registered hooks.
func (h *HookableBase) Hooks() []Hook {
	return h.hooks
}

// NumHooks returns the number of registered hooks.
func (h *HookableBase) NumHooks() int {
	return len(h.hooks)
}

// InvokeHook triggers the registered hooks in registration order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}
