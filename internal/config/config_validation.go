// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marat Khalitov

package config

// validate fills in defaults for every setting left empty after the merge
// and checks the remaining invariants.
//
// Defaults are deliberately permissive so the server starts with zero
// configuration: a local sqlite file, port 3000, and the built-in signing
// key. The signing key fallback in particular is a known deployment hazard;
// main logs a warning when UsingDefaultSignKey reports it is in use.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = DefaultTokenSignKey
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	return nil
}
