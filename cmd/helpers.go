package cmd

import (
	"fmt"

	"github.com/ziadkadry99/lexicon/internal/api"
	"github.com/ziadkadry99/lexicon/internal/config"
	"github.com/ziadkadry99/lexicon/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `lexicon init` to create a config file", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return cfg, nil
}

// newAPIClient creates the service client described by cfg.
func newAPIClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.APIBase, cfg.RequestTimeout)
}
