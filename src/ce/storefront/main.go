package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/imageopt"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/imageopt/imageopthandlers"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/hosting"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/tracking"
	"go.uber.org/zap"
)

func main() {
	c := config.Get()
	defer slog.Sync()

	if c.Tracking != nil && c.Tracking.Prometheus {
		tracking.Prometheus(tracking.PrometheusOpts{})
	}

	slog.Debug(slog.LogOpts{
		Msg:   "image optimizer",
		Level: slog.DL1,
		Payload: []zap.Field{
			zap.Bool("vips", imageopt.IsVipsEnabled()),
		},
	})

	// Built before serving so that the redis retries do not stall requests.
	imageopthandlers.SetService(imageopt.NewService(imageopt.ServiceOpts{}))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", c.HTTPPort),
		Handler:      hosting.Handler(),
		ReadTimeout:  c.HTTPTimeouts.ReadTimeout,
		WriteTimeout: c.HTTPTimeouts.WriteTimeout,
		IdleTimeout:  c.HTTPTimeouts.IdleTimeout,
	}

	go func() {
		slog.Info(fmt.Sprintf("storefront listening on :%s", c.HTTPPort))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Fatal("server stopped", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdown); err != nil {
		slog.Errorf("graceful shutdown failed: %s", err.Error())
	}
}
