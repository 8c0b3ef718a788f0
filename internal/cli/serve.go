package cli

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/api"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/config"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/i18n"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/metrics"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-mars-registry/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/service"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/view"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/shared/logger"
)

// NewServeCmd создаёт команду запуска HTTP-сервера.
//
// Сервер завершается корректно по SIGINT, SIGTERM и SIGQUIT
// с таймаутом server.shutdown_timeout.
func NewServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP-сервер",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(
				cmd.Context(),
				os.Interrupt,
				syscall.SIGTERM,
				syscall.SIGQUIT,
			)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

func newLogger(cfg *config.Config) *logger.HTTPLogger {
	return logger.New(logger.Options{
		Dir:         cfg.Log.Dir,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.Log.Development,
	})
}

func serve(ctx context.Context, cfg *config.Config) error {
	httpLogger := newLogger(cfg)
	defer func() { _ = httpLogger.Sync() }()
	sugar := httpLogger.Sugar()

	db, err := OpenDB(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Migrations.Enabled {
		if err := MigrateUp(db, cfg.Migrations.Path); err != nil {
			return err
		}
		sugar.Infof("migrations applied from %s", cfg.Migrations.Path)
	}

	store, err := OpenRepositories(ctx, cfg, db)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := service.NewServices(store.Repos, cfg)

	if cfg.Auth.Sessions.CleanupOnStart {
		n, err := svc.Auth.CleanupSessions(ctx)
		if err != nil {
			return err
		}
		metrics.SessionsCleanedTotal.Add(float64(n))
		sugar.Infof("removed %d stale sessions", n)
	}

	bundle, err := i18n.New(cfg.Locale.Default)
	if err != nil {
		return err
	}
	renderer, err := view.New()
	if err != nil {
		return err
	}

	handler := api.NewHandler(svc, httpLogger, renderer, bundle, api.CookieConfig{
		Name:   cfg.Auth.Sessions.CookieName,
		Secure: cfg.TLS.Enabled,
	})
	sessions := &middleware.Sessions{
		Auth:       svc.Auth,
		CookieName: cfg.Auth.Sessions.CookieName,
		Secure:     cfg.TLS.Enabled,
		Log:        httpLogger.Logger,
	}

	opts := h.Options{MaxBodyBytes: cfg.Server.MaxBodyBytes}
	if cfg.Observability.Metrics.Enabled {
		opts.MetricsPath = cfg.Observability.Metrics.Path
	}
	for _, check := range store.Checks {
		opts.HealthChecks = append(opts.HealthChecks, api.HealthCheck(check))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           h.NewRouter(handler, sessions, opts),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
		ErrorLog:          zap.NewStdLog(httpLogger.Logger),
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infof("server started on %s (tls=%t)", addr, cfg.TLS.Enabled)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Errorf("server stopped with error: %v", err)
		return err
	}
	sugar.Info("server gracefully stopped")
	return nil
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
