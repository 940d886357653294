package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"MedSupply/internal/catalog"
	"MedSupply/internal/inquiry"
	"MedSupply/pkg/kit"
)

type Deps struct {
	Catalog   catalog.Store
	Inquiries inquiry.Store

	// InquiryLimiter, when set, throttles inquiry submission per client IP.
	InquiryLimiter *kit.IPRateLimiter

	// StaticDir, when set, serves the marketing site for any path the API
	// does not claim.
	StaticDir string
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

const readyTimeout = 1 * time.Second

// NewHandler assembles the whole HTTP surface: middleware, health probes,
// product and inquiry routes, optional metrics and static site.
func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", readyz(deps, httpDeps.Log))

	cat := &catalog.Server{Store: deps.Catalog, Log: httpDeps.Log}
	r.Mount("/products", cat.Routes())

	inq := &inquiry.Server{Store: deps.Inquiries, Log: httpDeps.Log}
	r.Route("/inquiries", func(ir chi.Router) {
		create := ir
		if deps.InquiryLimiter != nil {
			create = ir.With(deps.InquiryLimiter.Middleware)
		}
		create.Post("/", inq.CreateHandler())
		ir.Get("/", inq.ListHandler())
		ir.Get("/{id}", inq.GetHandler())
	})

	if deps.StaticDir != "" {
		r.NotFound(staticHandler(deps.StaticDir))
	}

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func readyz(deps Deps, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		for name, ping := range map[string]func(context.Context) error{
			"catalog":   deps.Catalog.Ping,
			"inquiries": deps.Inquiries.Ping,
		} {
			if err := ping(ctx); err != nil {
				if log != nil {
					log.Warn("readyz failed", zap.String("store", name), zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", map[string]any{"store": name})
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
