package guildhttp

import (
	"context"

	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/transport"
)

// SendFunc represents the next step in an interceptor chain.
// The last step hands the request to the client's transport.
type SendFunc func(ctx context.Context, req request.Request) *transport.Call

// Interceptor wraps dispatch of a built request:
//
//	func timing(ctx context.Context, req request.Request, next guildhttp.SendFunc) *transport.Call {
//	    start := time.Now()
//	    return transport.Then(next(ctx, req), func(resp *transport.Response, err error) (*transport.Response, error) {
//	        log.Printf("%s %s took %v", req.Method(), req.Path(), time.Since(start))
//	        return resp, err
//	    })
//	}
//
// Interceptors only see requests that converted successfully. They can
// short-circuit by returning a completed Call without calling next.
// Send must not block, so work that waits belongs in transport.Go or
// transport.Then.
type Interceptor func(ctx context.Context, req request.Request, next SendFunc) *transport.Call

// chainInterceptors combines multiple interceptors into a single one.
// The first interceptor in the slice is the outer-most one (runs first).
func chainInterceptors(interceptors []Interceptor) Interceptor {
	if len(interceptors) == 0 {
		return nil
	}
	if len(interceptors) == 1 {
		return interceptors[0]
	}
	return func(ctx context.Context, req request.Request, final SendFunc) *transport.Call {
		chain := final
		for i := len(interceptors) - 1; i >= 0; i-- {
			current := interceptors[i]
			next := chain
			chain = func(ctx context.Context, req request.Request) *transport.Call {
				return current(ctx, req, next)
			}
		}
		return chain(ctx, req)
	}
}
