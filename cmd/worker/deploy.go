package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/config"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/ai"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/engine"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/github"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/logger"
)

// RunDeploy runs an autonomous deployment for a repository from the command
// line and prints the resulting record as JSON. Requires GITHUB_PAT; uses
// Gemini for the strategy when GEMINI_API_KEY is set.
func RunDeploy(args []string) {
	if len(args) < 1 {
		panic("usage: deploy <owner/repo>")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.App.LogLevel, cfg.App.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	gh, err := github.NewClient(cfg.GitHub.Token)
	if err != nil {
		panic(err)
	}

	var gen ai.Generator
	if cfg.GeminiConfigured() {
		gemini, err := ai.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			panic(err)
		}
		gen = gemini
	}

	record := engine.New(gh, gen, log).ExecuteAutonomous(ctx, args[0])

	fmt.Printf("Deployment %s: %s\n", record.ID, record.Status)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(record)
}
