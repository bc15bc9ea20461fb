package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/broady/guildhttp"
	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/transport"
)

// Logging creates an interceptor that logs dispatched requests using slog.
// It logs the start and end of each request, including duration and status.
func Logging(logger *slog.Logger) guildhttp.Interceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, req request.Request, next guildhttp.SendFunc) *transport.Call {
		start := time.Now()

		logger.InfoContext(ctx, "request started",
			slog.String("method", req.Method()),
			slog.String("path", req.Path()),
		)

		return transport.Then(next(ctx, req), func(resp *transport.Response, err error) (*transport.Response, error) {
			duration := time.Since(start)
			if err != nil {
				logger.ErrorContext(ctx, "request failed",
					slog.String("method", req.Method()),
					slog.String("path", req.Path()),
					slog.Duration("duration", duration),
					slog.Any("error", err),
				)
			} else {
				attrs := []any{
					slog.String("method", req.Method()),
					slog.String("path", req.Path()),
				}
				if resp != nil {
					attrs = append(attrs, slog.Int("status", resp.StatusCode))
				}
				attrs = append(attrs, slog.Duration("duration", duration))
				logger.InfoContext(ctx, "request completed", attrs...)
			}
			return resp, err
		})
	}
}
