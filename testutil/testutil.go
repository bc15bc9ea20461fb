// Package testutil provides a recording fake transport and assertions on
// built requests. It does not import the client package, so it can be used
// from any package's tests.
package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/transport"
)

// Transport is a fake transport that records every request it receives and
// answers with a canned response.
type Transport struct {
	mu       sync.Mutex
	requests []request.Request
	respond  func(ctx context.Context, req request.Request) (*transport.Response, error)
}

// NewTransport creates a fake transport answering 204 No Content.
func NewTransport() *Transport {
	return &Transport{
		respond: func(context.Context, request.Request) (*transport.Response, error) {
			return &transport.Response{StatusCode: http.StatusNoContent, Header: http.Header{}}, nil
		},
	}
}

// RespondJSON answers every request with status and v encoded as JSON.
func (t *Transport) RespondJSON(status int, v any) *Transport {
	body, err := json.Marshal(v)
	if err != nil {
		panic("testutil: encoding response: " + err.Error())
	}
	return t.RespondRaw(status, body)
}

// RespondRaw answers every request with status and body.
func (t *Transport) RespondRaw(status int, body []byte) *Transport {
	return t.RespondWith(func(context.Context, request.Request) (*transport.Response, error) {
		h := http.Header{}
		if len(body) > 0 {
			h.Set("Content-Type", "application/json")
		}
		return &transport.Response{StatusCode: status, Header: h, Body: body}, nil
	})
}

// RespondError fails every request with err.
func (t *Transport) RespondError(err error) *Transport {
	return t.RespondWith(func(context.Context, request.Request) (*transport.Response, error) {
		return nil, err
	})
}

// RespondWith answers requests with fn, run in the background like a real
// transport would.
func (t *Transport) RespondWith(fn func(ctx context.Context, req request.Request) (*transport.Response, error)) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.respond = fn
	return t
}

// Send records req and answers it.
func (t *Transport) Send(ctx context.Context, req request.Request) *transport.Call {
	t.mu.Lock()
	t.requests = append(t.requests, req)
	respond := t.respond
	t.mu.Unlock()

	return transport.Go(ctx, func(ctx context.Context) (*transport.Response, error) {
		return respond(ctx, req)
	})
}

// Requests returns the recorded requests in the order they were sent.
func (t *Transport) Requests() []request.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]request.Request(nil), t.requests...)
}

// Calls returns the number of requests sent.
func (t *Transport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}

// LastRequest returns the most recent request, failing the test if none was
// sent.
func (t *Transport) LastRequest(tb testing.TB) request.Request {
	tb.Helper()
	reqs := t.Requests()
	if len(reqs) == 0 {
		tb.Fatal("expected a request to be sent, got none")
	}
	return reqs[len(reqs)-1]
}

// AssertNoCalls checks that the transport was never invoked.
func AssertNoCalls(tb testing.TB, t *Transport) {
	tb.Helper()
	if n := t.Calls(); n != 0 {
		tb.Errorf("expected no transport calls, got %d", n)
	}
}

// AssertMethod checks the request method.
func AssertMethod(tb testing.TB, req request.Request, expected string) {
	tb.Helper()
	if req.Method() != expected {
		tb.Errorf("expected method %s, got %s", expected, req.Method())
	}
}

// AssertPath checks the request path.
func AssertPath(tb testing.TB, req request.Request, expected string) {
	tb.Helper()
	if req.Path() != expected {
		tb.Errorf("expected path %q, got %q", expected, req.Path())
	}
}

// AssertHeader checks that a request header has the expected value.
func AssertHeader(tb testing.TB, req request.Request, key, expectedValue string) {
	tb.Helper()
	actual := req.Headers().Get(key)
	if actual != expectedValue {
		tb.Errorf("expected header %s=%s, got %s", key, expectedValue, actual)
	}
}

// AssertNoHeader checks that a request header is absent.
func AssertNoHeader(tb testing.TB, req request.Request, key string) {
	tb.Helper()
	if values := req.Headers().Values(key); len(values) != 0 {
		tb.Errorf("expected no header %s, got %v", key, values)
	}
}

// AssertQuery checks that a query parameter has the expected value.
func AssertQuery(tb testing.TB, req request.Request, key, expectedValue string) {
	tb.Helper()
	q := req.Query()
	if !q.Has(key) {
		tb.Errorf("expected query %s=%s, got none", key, expectedValue)
		return
	}
	if actual := q.Get(key); actual != expectedValue {
		tb.Errorf("expected query %s=%s, got %s", key, expectedValue, actual)
	}
}

// AssertNoQuery checks that the request has no query parameters.
func AssertNoQuery(tb testing.TB, req request.Request) {
	tb.Helper()
	if q := req.Query(); len(q) != 0 {
		tb.Errorf("expected empty query, got %s", q.Encode())
	}
}

// AssertJSONBody compares the request body with expected, encoded as JSON.
func AssertJSONBody(tb testing.TB, req request.Request, expected any) {
	tb.Helper()

	expectedJSON, err := json.Marshal(expected)
	if err != nil {
		tb.Fatalf("encoding expected body: %v", err)
	}

	var expectedData, actualData any
	if err := json.Unmarshal(expectedJSON, &expectedData); err != nil {
		tb.Fatalf("decoding expected body: %v", err)
	}
	if err := json.Unmarshal(req.Body(), &actualData); err != nil {
		tb.Fatalf("decoding request body: %v\nBody: %s", err, req.Body())
	}

	expectedStr, _ := json.MarshalIndent(expectedData, "", "  ")
	actualStr, _ := json.MarshalIndent(actualData, "", "  ")
	if string(expectedStr) != string(actualStr) {
		tb.Errorf("body mismatch:\nExpected:\n%s\nActual:\n%s", expectedStr, actualStr)
	}
}
