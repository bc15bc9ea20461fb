package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/broady/guildhttp"
	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/transport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records request counts and latencies in Prometheus collectors.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the request collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guildhttp_requests_total",
				Help: "Requests sent, by HTTP method and outcome",
			},
			[]string{"method", "outcome", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "guildhttp_request_duration_seconds",
				Help:    "Time from dispatch to response",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "outcome"},
		),
	}
}

// Interceptor returns an interceptor feeding m. The outcome label is
// "success" or the transport error type.
func (m *Metrics) Interceptor() guildhttp.Interceptor {
	return func(ctx context.Context, req request.Request, next guildhttp.SendFunc) *transport.Call {
		start := time.Now()
		return transport.Then(next(ctx, req), func(resp *transport.Response, err error) (*transport.Response, error) {
			outcome, status := "success", ""
			if err != nil {
				te := transport.Classify(err)
				outcome = string(te.Type)
				if te.StatusCode != 0 {
					status = strconv.Itoa(te.StatusCode)
				}
			} else if resp != nil {
				status = strconv.Itoa(resp.StatusCode)
			}
			m.requests.WithLabelValues(req.Method(), outcome, status).Inc()
			m.duration.WithLabelValues(req.Method(), outcome).Observe(time.Since(start).Seconds())
			return resp, err
		})
	}
}
