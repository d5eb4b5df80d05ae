package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hangman/internal/config"
	"github.com/lox/hangman/internal/snapshot"
	"github.com/lox/hangman/internal/words"
)

// app holds what every command needs to play.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	logFile *os.File
	words   *words.Source
	store   *snapshot.Store
}

// loadConfig reads the config file and applies flag overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if g.Words != "" {
		cfg.Game.Dictionary = g.Words
	}
	if g.SaveFile != "" {
		cfg.Game.SaveFile = g.SaveFile
	}
	if g.Seed != 0 {
		cfg.Game.Seed = g.Seed
	}
	if g.ExitAfterSave {
		cfg.Game.ExitAfterSave = true
	}
	if g.NoColor {
		color := false
		cfg.UI.Color = &color
	}
	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.UI.LogFile = g.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (g *Globals) setup() (*app, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	// Log to a file so the game output stays clean
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	logger.Info("Starting hangman",
		"config", g.Config,
		"dictionary", cfg.Game.Dictionary,
		"save_file", cfg.Game.SaveFile,
		"version", version)

	clock := quartz.NewReal()
	source, err := words.Open(cfg.Game.Dictionary, cfg.Game.Seed, clock, logger)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		logFile: logFile,
		words:   source,
		store:   snapshot.NewStore(cfg.Game.SaveFile, clock, logger),
	}, nil
}

func (a *app) Close() error {
	return a.logFile.Close()
}
