package lasttrainservice

import (
	"context"

	"github.com/go-kit/kit/log"
	"github.com/kr/pretty"
	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainservice/night"
)

// Middleware is a service middleware, similar to endpoint middleware
type Middleware func(Service) Service

// NewLoggingMiddleware given a logger returns a service middleware
// that logs service methods calls
func NewLoggingMiddleware(logger log.Logger) Middleware {
	return func(next Service) Service {
		return loggingMiddleware{logger, next}
	}
}

type loggingMiddleware struct {
	logger log.Logger
	next   Service
}

func (mw loggingMiddleware) EscapePlan(ctx context.Context, tc night.Configuration) (s night.Summary, err error) {
	defer func() {
		mw.logger.Log(
			"method", "EscapePlan",
			"input", pretty.Sprint(tc.Origin, tc.Destination),
			"noRoute", s.NoRoute,
			"queries", s.Queries,
			"err", err,
		)
	}()
	return mw.next.EscapePlan(ctx, tc)
}
