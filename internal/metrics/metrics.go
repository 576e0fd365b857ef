// Package metrics wires the engine's internal counters to Prometheus
// gauges/counters and wraps the top-level run in OpenTelemetry tracing
// spans, exposed over HTTP when -metrics-port is non-zero.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/agbru/tsapredictor")

// Collectors bundles the gauges and counters populated while a run is in
// progress. All fields are safe for concurrent use (one per running cycle).
type Collectors struct {
	RefinementLevel *prometheus.GaugeVec
	PassCount       *prometheus.GaugeVec
	ArenaChunks     *prometheus.GaugeVec
	CyclesTotal     prometheus.Counter
	CyclesFound     prometheus.Counter
}

// NewCollectors registers a fresh set of collectors on a private registry
// and returns both the collectors and an http.Handler serving them.
func NewCollectors() (*Collectors, http.Handler) {
	reg := prometheus.NewRegistry()
	c := &Collectors{
		RefinementLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tsapredictor_refinement_level",
			Help: "Refinement level currently being attempted, by cycle index.",
		}, []string{"cycle"}),
		PassCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tsapredictor_pass_count",
			Help: "GRAY->POTW fixpoint passes completed at the current level, by cycle index.",
		}, []string{"cycle"}),
		ArenaChunks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tsapredictor_arena_chunks",
			Help: "Memory arena chunks allocated at the current level, by cycle index.",
		}, []string{"cycle"}),
		CyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tsapredictor_cycles_total",
			Help: "Attracting cycles submitted to the cell-mapping engine.",
		}),
		CyclesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tsapredictor_cycles_found_total",
			Help: "Cycles for which an interior cell was detected within the level range.",
		}),
	}
	reg.MustRegister(c.RefinementLevel, c.PassCount, c.ArenaChunks, c.CyclesTotal, c.CyclesFound)
	return c, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing /metrics on port and returns it so
// the caller can Shutdown it during lifecycle cleanup. A zero port means
// metrics are registered but not served.
func Serve(port int, handler http.Handler) *http.Server {
	if port == 0 {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}

// StartRunSpan opens the top-level tracing span for one tsapredictor run,
// tagged with the polynomial shape under analysis.
func StartRunSpan(ctx context.Context, shapeName string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "tsapredictor.run", trace.WithAttributes(attribute.String("shape", shapeName)))
}

// StartCycleSpan opens a child span covering one cycle's cellmap.Predict
// call.
func StartCycleSpan(ctx context.Context, cycleNumber, period int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "tsapredictor.cycle", trace.WithAttributes(
		attribute.Int("cycle.number", cycleNumber),
		attribute.Int("cycle.period", period),
	))
}
