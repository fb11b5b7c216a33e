package discord

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RESTMetrics tracks requests made through an InstrumentedInterface.
type RESTMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewRESTMetrics registers the rest metrics with registerer. A nil registerer
// creates unregistered collectors.
func NewRESTMetrics(registerer prometheus.Registerer) *RESTMetrics {
	factory := promauto.With(registerer)

	return &RESTMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "discord_resources_rest_requests_total",
				Help: "Total number of rest requests, split by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "discord_resources_rest_request_duration_seconds",
				Help:    "Rest request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// InstrumentedInterface records metrics for every request made through Next.
type InstrumentedInterface struct {
	Next    RESTInterface
	Metrics *RESTMetrics
}

func NewInstrumentedInterface(next RESTInterface, metrics *RESTMetrics) *InstrumentedInterface {
	return &InstrumentedInterface{
		Next:    next,
		Metrics: metrics,
	}
}

func (ii *InstrumentedInterface) Fetch(ctx context.Context, session *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	route := routeLabel(endpoint)
	start := time.Now()

	response, err := ii.Next.Fetch(ctx, session, method, endpoint, contentType, body, headers)

	ii.Metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	ii.Metrics.RequestsTotal.WithLabelValues(method, route, statusLabel(err)).Inc()

	return response, err
}

// routeLabel replaces numeric path segments so ids do not become label values.
func routeLabel(endpoint string) string {
	path, _, _ := strings.Cut(endpoint, "?")

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if segment == "" {
			continue
		}

		if _, err := strconv.ParseUint(segment, 10, 64); err == nil {
			segments[i] = ":id"
		}
	}

	return strings.Join(segments, "/")
}

func statusLabel(err error) string {
	if err == nil {
		return "ok"
	}

	var restError *RestError
	if errors.As(err, &restError) {
		return strconv.Itoa(restError.StatusCode)
	}

	return "error"
}
