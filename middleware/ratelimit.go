package middleware

import (
	"context"

	"github.com/broady/guildhttp"
	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/transport"
	"golang.org/x/time/rate"
)

// RateLimit creates an interceptor that spaces out requests with a token
// bucket. Requests wait in the background for a token; a request whose
// context ends first fails with a timeout or cancellation and is never sent.
//
// This is client-side throttling only. It knows nothing about the API's
// per-route buckets.
func RateLimit(limiter *rate.Limiter) guildhttp.Interceptor {
	return func(ctx context.Context, req request.Request, next guildhttp.SendFunc) *transport.Call {
		if limiter.Allow() {
			return next(ctx, req)
		}
		return transport.Go(ctx, func(ctx context.Context) (*transport.Response, error) {
			if err := limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return nil, transport.Classify(ctx.Err())
				}
				return nil, &transport.Error{Type: transport.ErrorTypeTimeout, Message: "rate limit wait exceeds deadline", Cause: err}
			}
			return next(ctx, req).Wait(ctx)
		})
	}
}
