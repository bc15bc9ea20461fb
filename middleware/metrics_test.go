package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/transport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	interceptor := m.Interceptor()

	ok := func(ctx context.Context, req request.Request) *transport.Call {
		return transport.Completed(&transport.Response{StatusCode: http.StatusOK}, nil)
	}
	notFound := func(ctx context.Context, req request.Request) *transport.Call {
		return transport.Completed(nil, &transport.Error{Type: transport.ErrorTypeResponse, StatusCode: http.StatusNotFound})
	}

	req := pinsRequest(t)
	for i := 0; i < 2; i++ {
		if _, err := interceptor(context.Background(), req, ok).Wait(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := interceptor(context.Background(), req, notFound).Wait(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "success", "200")); got != 2 {
		t.Errorf("expected 2 successful requests, got %f", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "response", "404")); got != 1 {
		t.Errorf("expected 1 failed request, got %f", got)
	}
	if got := testutil.CollectAndCount(m.duration); got != 2 {
		t.Errorf("expected 2 duration series, got %d", got)
	}
}

func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	defer func() {
		if recover() == nil {
			t.Error("expected registering twice on one registry to panic")
		}
	}()
	NewMetrics(reg)
}
