package metrics

import (
	"context"
	"fmt"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Refresh results.
const (
	RefreshSuccess = "success"
	RefreshFailure = "failure"
)

// Command outcomes.
const (
	CommandHandled   = "handled"
	CommandThrottled = "throttled"
	CommandDenied    = "denied"
	CommandEmpty     = "empty"
)

// Metrics contains all bot metrics. Each instance owns its own registry.
type Metrics struct {
	registry *prometheus.Registry

	// Detections by detected currency code
	DetectionsTotal *prometheus.CounterVec
	// Messages where nothing was detected
	MissedDetectionsTotal prometheus.Counter
	// Rendered conversion lines by target symbol
	ConversionLinesTotal *prometheus.CounterVec
	// Rate table refreshes by result
	RateRefreshesTotal *prometheus.CounterVec
	// Rate table fetch latency
	RateFetchDuration prometheus.Histogram
	// Bot commands by command and outcome
	CommandsTotal *prometheus.CounterVec
}

// New creates a new set of metrics registered in a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		DetectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_detections_total",
				Help: "Number of messages with a detected currency amount",
			},
			[]string{"currency"},
		),
		MissedDetectionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "currency_missed_detections_total",
				Help: "Number of messages without a recognised currency amount",
			},
		),
		ConversionLinesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_conversion_lines_total",
				Help: "Number of rendered conversion lines",
			},
			[]string{"symbol"},
		),
		RateRefreshesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_rate_refreshes_total",
				Help: "Number of rate table refreshes",
			},
			[]string{"result"},
		),
		RateFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "currency_rate_fetch_duration_seconds",
				Help:    "Duration of rate table fetches",
				Buckets: prometheus.DefBuckets,
			},
		),
		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bot_commands_total",
				Help: "Number of bot commands",
			},
			[]string{"command", "outcome"},
		),
	}
}

// Handler returns a fasthttp handler that exposes metrics on /metrics.
func (m *Metrics) Handler() fasthttp.RequestHandler {
	r := router.New()
	r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}),
	))

	return r.Handler
}

// Serve exposes metrics on address until ctx is done.
func (m *Metrics) Serve(ctx context.Context, address string) error {
	server := &fasthttp.Server{
		Handler: m.Handler(),
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown()
	}()

	err := server.ListenAndServe(address)
	if err != nil {
		return fmt.Errorf("serve metrics: %w", err)
	}

	return nil
}
