// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds the token and password reset settings of the backend.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration

	// ResetTokenTTL is how long a password reset token stays valid.
	ResetTokenTTL time.Duration
	// ResetLinkBase is the URL the reset token is appended to.
	ResetLinkBase string
	// HashKey is the HMAC key reset tokens are stored under.
	HashKey string

	// ForgotRate and ForgotBurst configure the per-address limiter of the
	// forgot-password endpoint.
	ForgotRate  float64
	ForgotBurst int
}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	// DSN is empty when the backend runs on in-memory repositories.
	DSN string
}

// RedisConfig holds the token cache connection settings.
type RedisConfig struct {
	// Address is empty when the backend keeps tokens in memory.
	Address  string
	Password string
	DB       int
}

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	DB    DBConfig
	Redis RedisConfig
}

// ServerBroker holds the notification broker settings.
type ServerBroker struct {
	// URL is empty when notifications are only logged.
	URL   string
	Queue string
}

// ServerHTTP holds the listening address and per-request timeout.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerConfig is the top-level backend configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Storage ServerStorage
	Broker  ServerBroker
	Server  ServerHTTP
}

// GetServerConfig builds and validates the backend config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			ResetTokenTTL: cfg.App.ResetTokenTTL,
			ResetLinkBase: cfg.App.ResetLinkBase,
			HashKey:       cfg.App.HashKey,
			ForgotRate:    cfg.App.ForgotRate,
			ForgotBurst:   cfg.App.ForgotBurst,
		},
		Storage: ServerStorage{
			DB: DBConfig{DSN: cfg.Storage.DB.DSN},
			Redis: RedisConfig{
				Address:  cfg.Storage.Redis.Address,
				Password: cfg.Storage.Redis.Password,
				DB:       cfg.Storage.Redis.DB,
			},
		},
		Broker: ServerBroker{
			URL:   cfg.Broker.URL,
			Queue: cfg.Broker.Queue,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}
}
