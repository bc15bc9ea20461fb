package guildhttp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/broady/guildhttp/testutil"
)

// newTestClient returns a client backed by a recording fake transport and a
// discarding logger.
func newTestClient() (*Client, *testutil.Transport) {
	tr := testutil.NewTransport()
	c := New(tr).WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return c, tr
}

// awaitError awaits f and returns its error as *Error, failing the test if
// the future succeeded.
func awaitError[T any](t *testing.T, f *ResponseFuture[T]) *Error {
	t.Helper()
	_, err := f.Await(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var gErr *Error
	if !errors.As(err, &gErr) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	return gErr
}

// awaitModel awaits f and decodes its model, failing the test on error.
func awaitModel[T any](t *testing.T, f *ResponseFuture[T]) T {
	t.Helper()
	v, err := f.Model(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}
