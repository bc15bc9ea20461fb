// Package request builds transport-agnostic descriptions of API requests.
//
// A [Request] is produced from a [routing.Route] through a [Builder]. Once
// built it is immutable and carries no knowledge of the endpoint that
// produced it: a transport needs only its method, path, query, headers, and
// body.
package request

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/broady/guildhttp/routing"
)

// Shape hints at what the response body contains, so a decoder knows how to
// read it without knowing the endpoint.
type Shape int

const (
	ShapeEmpty  Shape = iota // no body, or a body to be ignored
	ShapeSingle              // one JSON object
	ShapeList                // a JSON array of objects
)

func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeSingle:
		return "single"
	case ShapeList:
		return "list"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// TryIntoRequest is implemented by every endpoint builder. It converts the
// builder's accumulated state into a complete Request or fails. It performs
// no I/O and does not modify the builder.
type TryIntoRequest interface {
	TryIntoRequest() (Request, error)
}

// Request is a fully built request. The zero value is not useful; obtain one
// from Builder.Build or FromRoute.
type Request struct {
	method  string
	path    string
	query   url.Values
	headers http.Header
	body    []byte
	shape   Shape
}

// Method returns the HTTP method.
func (r Request) Method() string { return r.method }

// Path returns the path relative to the API base, without a leading slash.
func (r Request) Path() string { return r.path }

// Query returns a copy of the query parameters.
func (r Request) Query() url.Values { return url.Values(cloneValues(r.query)) }

// Headers returns a copy of the headers.
func (r Request) Headers() http.Header { return http.Header(cloneValues(r.headers)) }

// Body returns a copy of the body, or nil if there is none.
func (r Request) Body() []byte {
	if r.body == nil {
		return nil
	}
	return append([]byte(nil), r.body...)
}

// Shape returns the expected response shape.
func (r Request) Shape() Shape { return r.shape }

// PathAndQuery renders "path?query", omitting the separator when the query
// is empty.
func (r Request) PathAndQuery() string {
	if len(r.query) == 0 {
		return r.path
	}
	return r.path + "?" + r.query.Encode()
}

// FromRoute builds a request with no extra headers and no body.
func FromRoute(route routing.Route, shape Shape) (Request, error) {
	return NewBuilder(route).Expect(shape).Build()
}

// Builder accumulates the parts of a Request.
type Builder struct {
	route   routing.Route
	headers http.Header
	body    []byte
	shape   Shape
	err     error
}

// NewBuilder starts a request for the given route.
func NewBuilder(route routing.Route) *Builder {
	return &Builder{
		route:   route,
		headers: make(http.Header),
	}
}

// Header sets a header, replacing any previous value. Names are
// case-insensitive.
func (b *Builder) Header(name, value string) *Builder {
	b.headers.Set(name, value)
	return b
}

// Headers sets every header in h, replacing previous values for the same
// names.
func (b *Builder) Headers(h http.Header) *Builder {
	for name, values := range h {
		b.headers.Del(name)
		for _, v := range values {
			b.headers.Add(name, v)
		}
	}
	return b
}

// Body sets the raw request body.
func (b *Builder) Body(body []byte) *Builder {
	b.body = body
	return b
}

// JSON marshals v as the request body and sets the content type. A
// marshaling failure is reported by Build.
func (b *Builder) JSON(v any) *Builder {
	data, err := json.Marshal(v)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("request: encoding body: %w", err)
		}
		return b
	}
	b.body = data
	b.headers.Set("Content-Type", "application/json")
	return b
}

// Expect sets the expected response shape.
func (b *Builder) Expect(shape Shape) *Builder {
	b.shape = shape
	return b
}

// Build validates the route and returns the finished request.
func (b *Builder) Build() (Request, error) {
	if b.err != nil {
		return Request{}, b.err
	}
	if err := routing.Validate(b.route); err != nil {
		return Request{}, err
	}
	req := Request{
		method: b.route.Method(),
		path:   b.route.Path(),
		query:  b.route.Query(),
		shape:  b.shape,
	}
	if len(b.headers) > 0 {
		req.headers = http.Header(cloneValues(b.headers))
	}
	if b.body != nil {
		req.body = append([]byte(nil), b.body...)
	}
	return req, nil
}

func cloneValues(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = append([]string(nil), v...)
	}
	return out
}
