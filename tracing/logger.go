package tracing

import (
	"github.com/sarchlab/pagesim/paging"
	"github.com/sirupsen/logrus"
)

// An AccessLogger logs accesses at trace level and evictions at debug level.
type AccessLogger struct {
	logger *logrus.Logger
}

// NewAccessLogger creates an AccessLogger.
func NewAccessLogger(logger *logrus.Logger) *AccessLogger {
	return &AccessLogger{logger: logger}
}

// Func logs the event.
func (l *AccessLogger) Func(ctx paging.HookCtx) {
	switch ctx.Pos {
	case paging.HookPosAccess:
		if !l.logger.IsLevelEnabled(logrus.TraceLevel) {
			return
		}

		e := ctx.Item.(paging.AccessEvent)
		msg := "miss"

		if e.Hit {
			msg = "hit"
		}

		l.logger.WithFields(logrus.Fields{
			"strategy": domainName(ctx),
			"time":     e.Time,
			"pfn":      e.PFN,
			"kind":     e.Kind.String(),
		}).Trace(msg)
	case paging.HookPosEviction:
		e := ctx.Item.(paging.EvictionEvent)

		l.logger.WithFields(logrus.Fields{
			"strategy": domainName(ctx),
			"time":     e.Time,
			"incoming": e.Incoming,
			"evicted":  e.Evicted,
			"dirty":    e.EvictedDirty,
			"frame":    e.Frame,
		}).Debug("evict")
	}
}
