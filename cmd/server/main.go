package main

import (
	"database/sql"
	"os"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MedSupply/internal/app"
	"MedSupply/internal/catalog"
	"MedSupply/internal/inquiry"
	"MedSupply/pkg/kit"
)

func main() {
	service := "medsupply"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")

	deps := app.Deps{
		StaticDir: os.Getenv("STATIC_DIR"),
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			log.Fatal("open database failed", zap.Error(err))
		}
		deps.Catalog = catalog.NewPostgresStore(db)
		deps.Inquiries = inquiry.NewPostgresStore(db)
		log.Info("using postgres stores")
	} else {
		deps.Catalog = catalog.NewMemStore()
		deps.Inquiries = inquiry.NewMemStore()
		log.Info("using in-memory stores", zap.Int("seed_products", 8))
	}

	if limit := getenvInt(log, "INQUIRY_RATE_LIMIT", 20); limit > 0 {
		window := getenvInt(log, "INQUIRY_RATE_WINDOW_SECONDS", 60)
		deps.InquiryLimiter = kit.NewIPRateLimiter(limit, window)
	}

	h := app.NewHandler(deps, app.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: os.Getenv("METRICS_ENABLED") == "1",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(log *zap.Logger, k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatal("bad integer env var", zap.String("key", k), zap.String("value", v))
	}
	return n
}
