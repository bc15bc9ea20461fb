package guildhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/transport"
)

// EmptyBody is the model of endpoints that return no content.
type EmptyBody struct{}

// Response is a successful response from the API.
type Response[T any] struct {
	status int
	header http.Header
	body   []byte
	shape  request.Shape
}

// Status returns the HTTP status code.
func (r *Response[T]) Status() int { return r.status }

// Header returns a copy of the response headers.
func (r *Response[T]) Header() http.Header { return r.header.Clone() }

// Bytes returns a copy of the raw body.
func (r *Response[T]) Bytes() []byte { return append([]byte(nil), r.body...) }

// Model decodes the body. Responses with an empty shape decode to the zero
// value without reading the body.
func (r *Response[T]) Model() (T, error) {
	var v T
	if r.shape == request.ShapeEmpty || len(r.body) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(r.body, &v); err != nil {
		return v, Errorf(KindParsing, "decoding %s response: %v", r.shape, err).withCause(err)
	}
	return v, nil
}

type futureState int

const (
	stateLive futureState = iota
	stateFailed
	stateResolved
)

var closedChan = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// ResponseFuture is the deferred result of Exec. A future that failed
// during conversion resolves immediately without touching the network.
// Results are memoized: every Await after completion returns the same
// response or error.
type ResponseFuture[T any] struct {
	mu    sync.Mutex
	state futureState
	call  *transport.Call
	shape request.Shape
	resp  *Response[T]
	err   error
}

func failedFuture[T any](err *Error) *ResponseFuture[T] {
	return &ResponseFuture[T]{state: stateFailed, err: err}
}

func liveFuture[T any](call *transport.Call, shape request.Shape) *ResponseFuture[T] {
	return &ResponseFuture[T]{state: stateLive, call: call, shape: shape}
}

// Done is closed once Await can return without blocking.
func (f *ResponseFuture[T]) Done() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != stateLive {
		return closedChan
	}
	return f.call.Done()
}

// Failed reports whether the future failed before any request was sent.
func (f *ResponseFuture[T]) Failed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == stateFailed
}

// Await blocks until the response arrives or ctx is done. Returning early
// because of ctx does not resolve the future; a later Await can still
// observe the result. Errors are always *Error.
func (f *ResponseFuture[T]) Await(ctx context.Context) (*Response[T], error) {
	f.mu.Lock()
	if f.state != stateLive {
		defer f.mu.Unlock()
		return f.resp, f.err
	}
	call := f.call
	f.mu.Unlock()

	select {
	case <-call.Done():
	case <-ctx.Done():
		return nil, FromTransport(ctx.Err())
	}

	raw, err := call.Result()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == stateLive {
		f.state = stateResolved
		if err != nil {
			f.err = FromTransport(err)
		} else if raw == nil {
			f.err = NewError(KindProtocol, "transport returned no response")
		} else {
			f.resp = &Response[T]{
				status: raw.StatusCode,
				header: raw.Header,
				body:   raw.Body,
				shape:  f.shape,
			}
		}
	}
	return f.resp, f.err
}

// Model awaits the response and decodes it.
func (f *ResponseFuture[T]) Model(ctx context.Context) (T, error) {
	resp, err := f.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return resp.Model()
}

// singleUse guards a builder against a second Exec.
type singleUse struct {
	used atomic.Bool
}

func (s *singleUse) consume() bool {
	return s.used.CompareAndSwap(false, true)
}

// execute converts b and dispatches it through c. Conversion failures
// produce a failed future and never reach the transport.
func execute[T any](ctx context.Context, c *Client, once *singleUse, b request.TryIntoRequest) *ResponseFuture[T] {
	if !once.consume() {
		return failedFuture[T](conversionError(ErrBuilderConsumed))
	}
	return Send[T](ctx, c, b)
}

// Send converts b and dispatches it through c, decoding the response as T.
// Unlike Exec on a builder, Send may be called any number of times with the
// same value.
func Send[T any](ctx context.Context, c *Client, b request.TryIntoRequest) *ResponseFuture[T] {
	req, err := b.TryIntoRequest()
	if err != nil {
		gErr := conversionError(err)
		c.log().DebugContext(ctx, "request conversion failed",
			"kind", string(gErr.Kind),
			"error", gErr.Message)
		return failedFuture[T](gErr)
	}
	return liveFuture[T](c.send(ctx, req), req.Shape())
}
