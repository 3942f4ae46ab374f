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

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/uvishwakchander/NeuroX2/internal/config"
	"github.com/uvishwakchander/NeuroX2/internal/genai"
	"github.com/uvishwakchander/NeuroX2/internal/observability"
	serverHTTP "github.com/uvishwakchander/NeuroX2/internal/server/http"
	"github.com/uvishwakchander/NeuroX2/internal/store"
	"github.com/uvishwakchander/NeuroX2/internal/wellness"
)

func main() {
	root := &cobra.Command{
		Use:          "neurox-server",
		Short:        "NeuroX2 wellness companion backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	mainLogger := logger.NewComponentLogger("main")

	metrics, err := observability.NewMetrics(observability.MetricsConfig{Enabled: cfg.MetricsEnabled})
	if err != nil {
		return fmt.Errorf("initialize metrics: %w", err)
	}

	mainLogger.Info("starting server",
		"port", cfg.Port,
		"model", cfg.GenModel,
		"api_key", observability.SanitizeAPIKey(cfg.APIKey),
		"gen_timeout", cfg.GenTimeout.String(),
	)

	moods := store.NewMoodStore()
	forum := store.NewForumStore()
	progress := store.NewProgressStore()

	client := genai.NewClient(genai.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.GenModel,
		BaseURL: cfg.GenBaseURL,
		Timeout: cfg.GenTimeout,
	}, logger, metrics)

	router := serverHTTP.NewRouter(serverHTTP.Deps{
		Logger:       logger,
		Metrics:      metrics,
		Generator:    client,
		APIConnected: client.Connected(),
		Assessor:     wellness.NewAssessor(moods),
		Moods:        moods,
		Forum:        forum,
		Progress:     progress,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		mainLogger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		mainLogger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		return err
	}

	mainLogger.Info("server stopped")
	return nil
}
