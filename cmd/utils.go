package cmd

import (
	"fmt"

	"github.com/everfind/everfind/pkg/config"
	"github.com/everfind/everfind/pkg/index"
)

// openIndex loads the configuration and opens the index database it points at.
func openIndex(configPath string) (*config.Config, *index.Index, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	idx, err := index.Open(cfg.IndexPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening index %s: %w", cfg.IndexPath, err)
	}

	return cfg, idx, nil
}
