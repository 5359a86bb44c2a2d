package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/config"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/ai"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/bootstrap"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	cronjob "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/empire/cron"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/empire/probe"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/github"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.App.LogLevel, cfg.App.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap.SetGinMode(cfg.App.Environment)

	client, err := bootstrap.OpenStore(ctx, bootstrap.StoreOptions{URL: cfg.Store.RedisURL})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer client.Close()
	store := docstore.New(client)

	gh, err := github.NewClient(cfg.GitHub.Token)
	if errors.Is(err, github.ErrNotConfigured) {
		log.Warn().Msg("github integration disabled, set GITHUB_PAT to enable")
	} else if err != nil {
		log.Fatal().Err(err).Msg("initialize github client")
	}

	var gen ai.Generator
	if cfg.GeminiConfigured() {
		gemini, err := ai.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatal().Err(err).Msg("initialize gemini client")
		}
		gen = gemini
	} else {
		log.Warn().Msg("gemini integration disabled, set GEMINI_API_KEY to enable")
	}

	prober := probe.New(cfg.MusicJam.LiveURL, cfg.MusicJam.ProbeTimeout, store, cfg.MusicJam.ProbeTTL, log)

	scheduler := cronjob.NewScheduler(prober, cfg.MusicJam.ProbeSpec, log)
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("start probe scheduler")
	}
	defer scheduler.Stop()

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Cfg:    cfg,
		Logger: log,
		Store:  store,
		GitHub: gh,
		Gemini: gen,
		Prober: prober,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("empire dashboard listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("http server error")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown http server")
	}
}
