package router

import (
	"context"

	"github.com/dmitrymomot/sark/core/handler"
	"github.com/dmitrymomot/sark/core/logger"
)

// Call dispatches req to the first route whose method equals req.Method and
// whose pattern matches req.Path. The handler's response and error are
// returned unchanged. ErrNotFound is returned when no route matches,
// including when only the method differs.
//
// The handler receives a copy of req carrying exactly the parameters bound
// by the matched route; req itself is never modified. Call holds no locks
// and may be used concurrently once the router is frozen.
func (r *Router[S]) Call(ctx context.Context, req *handler.Request, state S) (*handler.Response, error) {
	for i := range r.routes {
		rt := &r.routes[i]
		if rt.method != req.Method {
			continue
		}

		params, ok := rt.pattern.match(req.Path)
		if !ok {
			continue
		}

		r.logger.DebugContext(ctx, "route matched",
			logger.Method(req.Method.String()),
			logger.Path(req.Path),
			logger.Route(rt.pattern.raw),
		)

		return rt.handler.Call(ctx, req.WithParams(params), state)
	}

	r.logger.DebugContext(ctx, "no route matched",
		logger.Method(req.Method.String()),
		logger.Path(req.Path),
	)

	return nil, ErrNotFound
}
