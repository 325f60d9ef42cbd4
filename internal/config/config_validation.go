// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The storage DSN and the shared password are mandatory; the server must not
// start without them. Server limits must be positive and the log level, when
// set, must be a known zerolog level.
func (cfg *StructuredConfig) validate() error {
	var missing []string
	if cfg.Storage.DB.DSN == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.App.Password == "" {
		missing = append(missing, "APP_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigurationMissing, strings.Join(missing, ", "))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxBodyBytes <= 0 || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
