package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	httpadapter "cv-amplify/internal/adapter/http"
	"cv-amplify/internal/adapter/identity"
	repo "cv-amplify/internal/adapter/repository"
	"cv-amplify/internal/config"
	"cv-amplify/internal/infrastructure/migration"
	"cv-amplify/internal/logger"
	"cv-amplify/internal/usecase"
	infra "cv-amplify/pkg/infrastructure"

	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the generation service and studio page",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}
	logger.Init(cfg.Logger)
	log := logger.Component("serve")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewEventsPool(ctx, cfg.Events.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("events database not available, recording disabled")
		pool = nil
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Warn().Err(err).Msg("events migrations failed, recording disabled")
			pool.Close()
			pool = nil
		} else {
			defer pool.Close()
		}
	}

	if !cfg.AuthEnabled() {
		log.Warn().Msg("JWT_SECRET not set, running in demo mode")
	}

	h := httpadapter.NewHandler(httpadapter.HandlerConfig{
		Generator: usecase.NewTemplateGenerator(),
		Sessions:  identity.NewProvider(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Events:    repo.NewEventsRepo(pool),
		LoginURL:  cfg.Server.LoginURL,
		Timeout:   cfg.Generation.Timeout,
	})
	app := httpadapter.NewApp(h, logger.Component("http"))

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info().Str("addr", addr).Bool("auth", cfg.AuthEnabled()).Msg("server listening")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
