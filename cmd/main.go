package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paperdeck/internal/config"
	"paperdeck/internal/extractor"
	"paperdeck/internal/pipeline"
	"paperdeck/internal/renderer"
	"paperdeck/internal/scheduler"
	"paperdeck/internal/server"
	"paperdeck/internal/summarizer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}

	abstractive := initOpenAISummarizer(ctx, cfg.OpenAIAPIKey, log)
	set := summarizer.NewSet(abstractive, summarizer.NewExtractive(cfg.ExtractiveSentences), log)
	pipe := pipeline.New(set, log)

	sched := scheduler.New(ctx, set, abstractiveFactory(cfg.OpenAIAPIKey), log)
	if err = sched.Start(); err != nil {
		log.ErrorContext(ctx, "Failed to start scheduler",
			"error", err,
			"spec", scheduler.ReinstateSpec)

		return
	}
	defer sched.Stop()
	log.InfoContext(ctx, "Scheduler is started",
		"spec", scheduler.ReinstateSpec)

	srv := server.New(
		pipe,
		extractor.New(log),
		server.Renderers{
			Deck:     renderer.NewDeck(log),
			Audio:    renderer.NewAudio(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID, log),
			Video:    renderer.NewVideo(renderer.NewExecutor(), log),
			Abstract: renderer.NewAbstract(log),
		},
		cfg.MaxUploadBytes,
		log,
	)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv,
	}

	go func() {
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.ErrorContext(ctx, "HTTP server failed",
				"error", serveErr,
				"addr", cfg.Addr)
			cancel()
		}
	}()
	log.InfoContext(ctx, "Server is started",
		"addr", cfg.Addr,
		"abstractiveAvailable", set.AbstractiveAvailable())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case <-ctx.Done():
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "Failed to shut down HTTP server",
			"error", err)
	}

	log.InfoContext(shutdownCtx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}

func initOpenAISummarizer(ctx context.Context, apiKey string, log *slog.Logger) summarizer.Summarizer {
	if apiKey == "" {
		log.WarnContext(ctx, "OPENAI_API_KEY is missing so fallback will be used",
			"envVar", "OPENAI_API_KEY")

		return nil
	}

	s, err := summarizer.NewOpenAISummarizer(apiKey)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create OpenAI summarizer so fallback will be used",
			"error", err,
			"envVar", "OPENAI_API_KEY")

		return nil
	}

	log.InfoContext(ctx, "OpenAI summarizer is initialized",
		"provider", "openai")

	return s
}

func abstractiveFactory(apiKey string) scheduler.Factory {
	if apiKey == "" {
		return nil
	}

	return func() (summarizer.Summarizer, error) {
		return summarizer.NewOpenAISummarizer(apiKey)
	}
}
