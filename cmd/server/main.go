package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/textscope/textscope/config"
	"github.com/textscope/textscope/internal/analyzers"
	"github.com/textscope/textscope/internal/httpserver"
	"github.com/textscope/textscope/internal/logging"
	"github.com/textscope/textscope/internal/monitoring"
	"github.com/textscope/textscope/internal/pipeline"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	// Load every model once at startup; requests share the read-only
	// analyzer instances.
	sentiment := analyzers.NewSentimentAnalyzer()
	emotions := analyzers.NewEmotionAnalyzer()
	summarizer := analyzers.NewSummarizer()
	entities, err := analyzers.NewEntityAnalyzer()
	if err != nil {
		// Degraded mode: /analyze keeps working without NER and /health
		// reports the parser unhealthy.
		slog.Error("[Main] Entity parser failed to load, NER disabled",
			slog.String("error", err.Error()))
	} else {
		slog.Info("[Main] Entity parser loaded")
	}

	p := pipeline.New(sentiment, entities, emotions, summarizer)

	checkers := []monitoring.HealthChecker{
		monitoring.NewChecker("sentiment", func(_ context.Context, sample string) error {
			sentiment.Analyze(sample)
			return nil
		}),
		monitoring.NewChecker("entities", func(_ context.Context, sample string) error {
			_, err := entities.Analyze(sample)
			return err
		}),
		monitoring.NewChecker("emotions", func(_ context.Context, sample string) error {
			_, _, err := emotions.Analyze(sample)
			return err
		}),
		monitoring.NewChecker("summary", func(_ context.Context, sample string) error {
			_, err := summarizer.Summarize(sample)
			return err
		}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthy := &atomic.Bool{}
	healthy.Store(true)
	go monitoring.Monitor(ctx, checkers, healthy)

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpserver.NewRouter(p, checkers),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("[Main] NLP server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("[Main] Server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	slog.Info("[Main] Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Shutdown error", slog.String("error", err.Error()))
	}
}
