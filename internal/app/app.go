package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/shandysiswandi/goitems/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goitems/internal/pkg/pkglog"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgopenapi"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goitems/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	goroutine *pkgroutine.Manager
	openapi   *pkgopenapi.Document

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging(slog.LevelInfo)

	app, err := newApp(loadConfig())
	if err != nil {
		slog.Error("failed to init application", "error", err)
		os.Exit(1)
	}

	return app
}

func newApp(cfg pkgconfig.Config) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
		config: cfg,
	}

	app.initLogging()

	steps := []func() error{
		app.initLibraries,
		app.initOpenAPI,
		app.initHTTPServer,
		app.initModules,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			cancel()
			return nil, err
		}
	}

	app.initClosers()

	return app, nil
}
