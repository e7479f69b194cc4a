package app

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"
	"github.com/shandysiswandi/goitems/api"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goitems/internal/pkg/pkglog"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgopenapi"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goitems/internal/pkg/pkguid"
)

func defaults() map[string]any {
	return map[string]any{
		"log.level":                      "info",
		"goroutine.max":                  10,
		"server.address.http":            ":8080",
		"server.timeout.read_header":     "10s",
		"server.timeout.read":            "15s",
		"server.timeout.write":           "30s",
		"server.timeout.idle":            "60s",
		"server.timeout.handler":         "30s",
		"server.shutdown_timeout":        "10s",
		"server.compression":             true,
		"server.correlation_id":          pkguid.StrategyUUID,
		"server.cors.allowed_origins":    "*",
		"server.cors.allow_credentials":  false,
		"server.cors.max_age_in_seconds": 600,
		"modules.ping.enabled":           true,
		"modules.item.enabled":           true,
		"modules.docs.enabled":           true,
		"openapi.validate_requests":      true,
	}
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	if os.Getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

func loadConfig() pkgconfig.Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := pkgconfig.NewViper(configPath(), pkgconfig.WithDefaults(defaults()))
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	return cfg
}

func (a *App) initLogging() {
	pkglog.InitLogging(pkglog.ParseLevel(a.config.GetString("log.level")))
}

func (a *App) initLibraries() error {
	a.goroutine = pkgroutine.NewManager(int(a.config.GetInt("goroutine.max")))

	uid, err := pkguid.NewStringID(a.config.GetString("server.correlation_id"))
	if err != nil {
		return err
	}
	a.uuid = uid

	return nil
}

func (a *App) initOpenAPI() error {
	doc, err := pkgopenapi.Load(a.ctx, api.OpenAPI)
	if err != nil {
		return err
	}
	a.openapi = doc

	return nil
}

func (a *App) initHTTPServer() error {
	a.router = pkgrouter.NewRouter(a.uuid)
	a.router.Use(pkgrouter.Timeout(a.config.GetDuration("server.timeout.handler")))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("server.cors.allowed_origins"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{pkgrouter.HeaderCorrelationID},
		AllowCredentials: a.config.GetBool("server.cors.allow_credentials"),
		MaxAge:           int(a.config.GetInt("server.cors.max_age_in_seconds")),
	})

	var handler http.Handler = corsHandler.Handler(a.router)
	if a.config.GetBool("server.compression") {
		handler = gzhttp.GzipHandler(handler)
	}

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           handler,
		ReadHeaderTimeout: durationOr(a.config.GetDuration("server.timeout.read_header"), 10*time.Second),
		ReadTimeout:       a.config.GetDuration("server.timeout.read"),
		WriteTimeout:      a.config.GetDuration("server.timeout.write"),
		IdleTimeout:       a.config.GetDuration("server.timeout.idle"),
	}

	return nil
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
