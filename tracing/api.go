// Package tracing provides hooks that report what a simulator does.
package tracing

import (
	"fmt"
	"reflect"

	"github.com/sarchlab/pagesim/paging"
)

// NamedHookable represents something that both has a name and can be hooked.
type NamedHookable interface {
	paging.Hookable
	Name() string
}

// Attach registers the hook on the domain. Attaching the same hook twice is a
// programming error.
func Attach(domain NamedHookable, hook paging.Hook) {
	if reflect.TypeOf(hook).Comparable() {
		for _, h := range domain.Hooks() {
			if h == hook {
				panic(fmt.Sprintf("domain %s already has hook %s",
					domain.Name(), reflect.TypeOf(hook)))
			}
		}
	}

	domain.AcceptHook(hook)
}

func domainName(ctx paging.HookCtx) string {
	named, ok := ctx.Domain.(NamedHookable)
	if !ok {
		return ""
	}

	return named.Name()
}
