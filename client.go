// Package guildhttp builds and dispatches typed requests to the guild and
// channel HTTP API.
//
// Every endpoint has its own builder, created from a [Client]:
//
//	client := guildhttp.NewClient(os.Getenv("BOT_TOKEN"))
//
//	del, err := client.DeleteBan(guildID, userID).Reason("appeal accepted")
//	if err != nil {
//	    return err // the reason was rejected; nothing was sent
//	}
//	if _, err := del.Exec(ctx).Await(ctx); err != nil {
//	    return err
//	}
//
// Exec converts the builder into a [request.Request] and hands it to the
// client's transport. Invalid parameters never reach the network: they
// surface as a [*Error] from the returned [ResponseFuture], exactly like a
// network failure would.
package guildhttp

import (
	"context"
	"log/slog"

	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/transport"
)

// Client creates endpoint builders and dispatches their requests.
// Configure it before first use; it is safe for concurrent use afterwards.
// The zero value has no transport: valid requests fail with KindProtocol.
type Client struct {
	transport    transport.Transport
	interceptors []Interceptor
	logger       *slog.Logger
}

// NewClient creates a client sending over HTTP with the given bot token.
func NewClient(token string, opts ...transport.Option) *Client {
	return New(transport.NewHTTP(token, opts...))
}

// New creates a client sending over t.
func New(t transport.Transport) *Client {
	return &Client{
		transport: t,
		logger:    slog.Default(),
	}
}

// WithTransport replaces the transport.
// It returns the client for chaining.
func (c *Client) WithTransport(t transport.Transport) *Client {
	c.transport = t
	return c
}

// WithInterceptor adds an interceptor around every dispatched request.
// Interceptors run in the order they were added.
func (c *Client) WithInterceptor(i Interceptor) *Client {
	c.interceptors = append(c.interceptors, i)
	return c
}

// WithLogger sets the logger for client diagnostics.
// If not set, slog.Default() is used.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c.logger = logger
	return c
}

func (c *Client) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

func (c *Client) send(ctx context.Context, req request.Request) *transport.Call {
	if c.transport == nil {
		return transport.Completed(nil, &transport.Error{
			Type:    transport.ErrorTypeProtocol,
			Message: "no transport configured",
		})
	}
	final := SendFunc(c.transport.Send)
	if chain := chainInterceptors(c.interceptors); chain != nil {
		return chain(ctx, req, final)
	}
	return final(ctx, req)
}

// withReason attaches an audit log reason header when one was set.
func withReason(b *request.Builder, reason string) error {
	if reason == "" {
		return nil
	}
	h, err := request.AuditHeader(reason)
	if err != nil {
		return err
	}
	b.Headers(h)
	return nil
}

// checkReason validates a reason for a builder's Reason method.
func checkReason(reason string) error {
	if _, err := request.ValidateAuditReason(reason); err != nil {
		return conversionError(err)
	}
	return nil
}
