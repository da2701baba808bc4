// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/MKhiriev/go-square/square"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants of the example server before it is used at startup.
//
// Returns nil if the configuration is valid, or every violation joined into
// one error otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if err := cfg.Square.validate(); err != nil {
		errs = append(errs, err)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if w := cfg.Workers; w.PendingSweepInterval < 0 || (w.PendingSweepInterval > 0 && w.PendingMaxAge <= 0) {
		errs = append(errs, ErrInvalidWorkersConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
			errs = append(errs, fmt.Errorf("%w: level %q", ErrInvalidLogConfigs, cfg.Log.Level))
		}
	}

	return errors.Join(errs...)
}

func (s *Square) validate() error {
	if strings.TrimSpace(s.AccessToken) == "" {
		return ErrMissingAccessToken
	}

	if _, err := square.ParseEnvironment(s.Environment); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSquareConfigs, err)
	}

	if s.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidSquareConfigs)
	}

	return nil
}
