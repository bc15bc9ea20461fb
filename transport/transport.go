// Package transport sends built requests over the network.
//
// The request layer hands a [request.Request] to a [Transport] and receives a
// [Call]: a handle to an operation that completes in the background. The
// transport owns connection management, cancellation, and timeouts; callers
// only wait on the Call.
package transport

import (
	"context"
	"net/http"

	"github.com/broady/guildhttp/request"
)

// Transport starts requests. Send must not block on network I/O and must be
// safe for concurrent use.
type Transport interface {
	Send(ctx context.Context, req request.Request) *Call
}

// Func adapts a function to the Transport interface.
type Func func(ctx context.Context, req request.Request) *Call

// Send calls f(ctx, req).
func (f Func) Send(ctx context.Context, req request.Request) *Call {
	return f(ctx, req)
}

// Response is a raw response. The body has been read in full.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Call is an in-flight operation. Its result is set exactly once.
type Call struct {
	done chan struct{}
	resp *Response
	err  error
}

// Go runs fn in a new goroutine and returns a Call that completes with its
// result.
func Go(ctx context.Context, fn func(ctx context.Context) (*Response, error)) *Call {
	c := &Call{done: make(chan struct{})}
	go func() {
		defer close(c.done)
		c.resp, c.err = fn(ctx)
	}()
	return c
}

// Completed returns a Call that has already finished with the given result.
func Completed(resp *Response, err error) *Call {
	c := &Call{done: make(chan struct{}), resp: resp, err: err}
	close(c.done)
	return c
}

// Then returns a Call that completes with fn applied to the result of c.
func Then(c *Call, fn func(*Response, error) (*Response, error)) *Call {
	next := &Call{done: make(chan struct{})}
	go func() {
		defer close(next.done)
		<-c.done
		next.resp, next.err = fn(c.resp, c.err)
	}()
	return next
}

// Done is closed when the call completes.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Result returns the outcome. It must only be called after Done is closed.
func (c *Call) Result() (*Response, error) {
	return c.resp, c.err
}

// Wait blocks until the call completes or ctx is done. Giving up on a call
// does not cancel it; cancellation flows through the context given to Send.
func (c *Call) Wait(ctx context.Context) (*Response, error) {
	select {
	case <-c.done:
		return c.resp, c.err
	case <-ctx.Done():
		return nil, contextError(ctx.Err())
	}
}
