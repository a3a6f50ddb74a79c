// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"
)

// Defaults applied by the config views to unset fields.
const (
	DefaultAPIURL          = "http://localhost:3000"
	DefaultServerAddress   = "localhost:3000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultClientDBPath    = "client-keeper.db"
	DefaultRefreshInterval = time.Minute
	DefaultTokenIssuer     = "client-keeper"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultResetTokenTTL   = time.Hour
	DefaultResetLinkBase   = "http://localhost:3000/reset-password"
	DefaultQueue           = "password_reset"
	DefaultForgotRate      = 0.2
	DefaultForgotBurst     = 3
)

// validate fills unset client fields with defaults and checks the rest.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAPIURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultClientDBPath
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}

	var errs []error
	if cfg.Adapter.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs))
	}
	if cfg.Workers.RefreshInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: negative refresh interval", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}

// validate fills unset backend fields with defaults and checks the rest.
func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.ResetTokenTTL == 0 {
		cfg.App.ResetTokenTTL = DefaultResetTokenTTL
	}
	if cfg.App.ResetLinkBase == "" {
		cfg.App.ResetLinkBase = DefaultResetLinkBase
	}
	if cfg.App.ForgotRate == 0 {
		cfg.App.ForgotRate = DefaultForgotRate
	}
	if cfg.App.ForgotBurst == 0 {
		cfg.App.ForgotBurst = DefaultForgotBurst
	}
	if cfg.Broker.Queue == "" {
		cfg.Broker.Queue = DefaultQueue
	}

	var errs []error
	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.HashKey == "" {
		errs = append(errs, fmt.Errorf("%w: hash key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration < 0 || cfg.App.ResetTokenTTL < 0 {
		errs = append(errs, fmt.Errorf("%w: negative token lifetime", ErrInvalidAppConfigs))
	}
	if cfg.App.ForgotRate < 0 || cfg.App.ForgotBurst < 0 {
		errs = append(errs, fmt.Errorf("%w: negative forgot-password limit", ErrInvalidAppConfigs))
	}
	if cfg.Storage.Redis.DB < 0 {
		errs = append(errs, fmt.Errorf("%w: negative redis db", ErrInvalidStorageConfigs))
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}
