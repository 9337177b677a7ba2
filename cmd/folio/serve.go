package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/btmxh/folio/internal/auth"
	"github.com/btmxh/folio/internal/config"
	"github.com/btmxh/folio/internal/db"
	"github.com/btmxh/folio/internal/media"
	"github.com/btmxh/folio/internal/routes"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the portfolio web server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		setupLogging(cfg.LogLevel)

		if err = cfg.RequireServer(); err != nil {
			return err
		}

		ctx, done := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer done()

		if err = db.InitDB(cfg.DatabaseURL); err != nil {
			return err
		}
		defer db.CloseDB()
		slog.Info("Database connection initialized")

		if err = db.Migrate(ctx); err != nil {
			return err
		}

		if err = auth.InitJWT(cfg.JWTSecret); err != nil {
			return err
		}

		if cfg.AdminPasswordHash == "" {
			slog.Warn("ADMIN_PASSWORD_HASH not set, admin login is disabled")
		}

		router := routes.CreateMainRouter(routes.Options{
			GzipMode:         cfg.GzipMode,
			Admin:            &auth.Admin{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash},
			Prober:           media.NewProber(media.NewHTTPChecker(nil), cfg.ProbeTimeout),
			ProbeConcurrency: cfg.ProbeConcurrency,
			SecureCookies:    cfg.HasTLS(),
		})

		server := &http.Server{Addr: cfg.Addr, Handler: router}
		g, gCtx := errgroup.WithContext(ctx)

		g.Go(func() error {
			var err error
			if cfg.HasTLS() {
				slog.Info("Starting HTTPS server", slog.String("addr", cfg.Addr), slog.String("cert", cfg.CertFile), slog.String("key", cfg.KeyFile))
				err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
			} else {
				slog.Info("Starting HTTP server", slog.String("addr", cfg.Addr))
				err = server.ListenAndServe()
			}

			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-gCtx.Done()
			defer slog.Info("Server stopped")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}
