package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// loadEndpointConfig loads the external endpoints from environment variables.
// This function is called by LoadConfig() in General.go.
func loadEndpointConfig(cfg *AppConfig) error {
	if v, ok := os.LookupEnv("DMM_SWAP_URL"); ok && v != "" {
		cfg.View.SwapBaseURL = v
	}
	cfg.View.SwapBaseURL = strings.TrimSpace(cfg.View.SwapBaseURL)

	if cfg.View.SwapBaseURL == "" {
		log.Warn().Msg("DMM_SWAP_URL is not set; add-liquidity links are disabled.")
		return nil
	}

	log.Debug().
		Str("SwapBaseURL", cfg.View.SwapBaseURL).
		Msg("Endpoint configuration loaded successfully.")

	return nil
}
