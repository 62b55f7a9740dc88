package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/applytrack/internal/api"
	"github.com/jonathan/applytrack/internal/config"
	"github.com/jonathan/applytrack/internal/session"
	"github.com/jonathan/applytrack/internal/store"
	"github.com/jonathan/applytrack/internal/types"
)

// loadConfig merges the config file, environment, and global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	merged := cfg.MergeWithDefaults(config.Default())
	if flagBaseURL != "" {
		merged.BaseURL = flagBaseURL
	}
	if flagVerbose {
		merged.Verbose = true
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// newController wires config, logger, API client and profile store into a
// session controller.
func newController() (*session.Controller, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := newLogger(cfg)

	client, err := api.New(api.Options{
		BaseURL: cfg.BaseURL,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		Logger:  log,
	})
	if err != nil {
		return nil, nil, err
	}

	var profiles *store.Store
	if cfg.StateDir != "" {
		profiles = store.NewAt(cfg.StateDir)
	} else {
		profiles, err = store.New()
		if err != nil {
			return nil, nil, err
		}
	}

	return session.New(client, profiles, log), cfg, nil
}

// requireMember restores the persisted session and fails when none exists.
func requireMember(ctrl *session.Controller) (*types.Profile, error) {
	profile, err := ctrl.Restore()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("not logged in; run 'applytrack login' first")
	}
	return profile, nil
}
