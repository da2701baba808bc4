package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig].
//
// Access tokens are often pasted from the Square dashboard with a trailing
// newline, so the token is trimmed and the environment name lower-cased
// before validation sees them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Square.AccessToken = strings.TrimSpace(cfg.Square.AccessToken)
	cfg.Square.Environment = strings.ToLower(strings.TrimSpace(cfg.Square.Environment))

	return nil
}
