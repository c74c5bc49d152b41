// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required at startup.
//
// Rotating secrets are deliberately NOT validated here: the encryption key
// and Portale Alloggiati credentials are checked at call time by the vault
// and the reporting service, so a secret rotation never requires a restart
// and a missing secret fails only the operations that need it.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.AdminLogin == "" || cfg.Auth.AdminPasswordHash == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.App.CheckinBaseURL == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.PurgeInterval <= 0 || cfg.Workers.PurgeTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
