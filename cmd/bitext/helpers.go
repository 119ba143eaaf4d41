package main

import (
	"strconv"

	"bitext/internal/config"
	"bitext/internal/profiles"
)

// loadCatalog builds the profile catalog, overlaying the configured YAML
// file on the builtin table when one is set.
func loadCatalog(cfg *config.Config) (*profiles.Catalog, error) {
	catalog := profiles.NewCatalog()
	if cfg.Profiles.Catalog != "" {
		if err := catalog.LoadFile(cfg.Profiles.Catalog); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
