package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cataloghandler "fitcore/internal/catalog/handler"
	"fitcore/internal/platform/health"
	verifyhandler "fitcore/internal/verification/handler"
	"fitcore/pkg/platform/middleware/metadata"
	"fitcore/pkg/platform/middleware/request"
	"fitcore/pkg/platform/validation"
)

// Deps holds everything the router mounts.
type Deps struct {
	Logger         *slog.Logger
	RequestTimeout time.Duration
	Metadata       metadata.Config

	Verification *verifyhandler.Handler
	Catalog      *cataloghandler.Handler
	Health       *health.Handler

	// Latency is optional; nil disables per-route latency metrics.
	Latency *request.Metrics
	// Gatherer backs /metrics; nil leaves the endpoint unmounted.
	Gatherer prometheus.Gatherer
}

// NewRouter wires public endpoints behind the shared middleware stack.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(metadata.NewMiddleware(d.Metadata).Handler)
	r.Use(request.Logger(d.Logger))
	r.Use(request.LatencyMiddleware(d.Latency, routePattern))
	if d.RequestTimeout > 0 {
		r.Use(request.Timeout(d.RequestTimeout))
	}

	if d.Health != nil {
		d.Health.Register(r)
	}
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(request.ContentTypeJSON)
		api.Use(request.BodyLimit(validation.MaxBodySize))
		if d.Verification != nil {
			d.Verification.Register(api)
		}
		if d.Catalog != nil {
			d.Catalog.Register(api)
		}
	})

	return r
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
