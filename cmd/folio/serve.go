package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/config"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/form"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/requestinfo"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(),
			syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, db, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.Geo.DBPath != "" {
			if err := requestinfo.InitGeo(cfg.Geo.DBPath); err != nil {
				zap.S().Warnw("geoip disabled", "path", cfg.Geo.DBPath, "err", err)
			}
		}
		if err := form.RegisterForms(filepath.Join(cfg.Paths.Root, "conf", "forms")); err != nil {
			return err
		}

		app := web.New(cfg, store.New(db), "")
		srv := app.HTTPServer()

		// SIGHUP re-reads config overlays and drops the parsed
		// template set without a restart.
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		go func() {
			for range hup {
				zap.S().Infow("reload requested")
				if err := config.Reload(); err != nil {
					zap.S().Errorw("config reload failed", "err", err)
				}
				app.ReloadTemplates()
			}
		}()

		errc := make(chan error, 1)
		go func() { errc <- srv.ListenAndServe() }()
		color.Green("✓ listening on %s", cfg.HTTP.ListenAddr)
		zap.S().Infow("server started", "addr", cfg.HTTP.ListenAddr)

		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		zap.S().Infow("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	},
}
