package config

import (
	"fmt"

	"github.com/MKhiriev/go-square/square"
)

// GetClientConfig builds the Square settings for tools that parse their own
// command line (squarectl). Defaults, .env and environment variables are
// merged first; non-zero fields of overrides win over all of them.
func GetClientConfig(overrides Square) (*Square, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		with(&StructuredConfig{Square: overrides}).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &cfg.Square, cfg.Square.validate()
}

// ClientOptions translates the settings into square.Client options.
func (s Square) ClientOptions() ([]square.Option, error) {
	env, err := square.ParseEnvironment(s.Environment)
	if err != nil {
		return nil, err
	}

	opts := []square.Option{square.WithEnvironment(env)}
	if s.BaseURL != "" {
		opts = append(opts, square.WithBaseURL(s.BaseURL))
	}
	if s.Version != "" {
		opts = append(opts, square.WithSquareVersion(s.Version))
	}
	if s.Timeout > 0 {
		opts = append(opts, square.WithTimeout(s.Timeout))
	}
	if s.MaxRetries != 0 {
		opts = append(opts, square.WithRetry(s.MaxRetries, 0, 0))
	}

	return opts, nil
}
