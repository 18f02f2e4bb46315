// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	DefaultServerAddress        = "localhost:5000"
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultTokenIssuer          = "equip-keeper"
	DefaultTokenDuration        = 24 * time.Hour
)

type DevServerApp struct {
	Version         string
	TokenSignKey    string
	TokenIssuer     string
	TokenDuration   time.Duration
	PasswordHashKey string
}

type DevServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// DevServerConfig is the configuration of the in-memory inventory API.
type DevServerConfig struct {
	App    DevServerApp
	Server DevServerHTTP
}

// GetDevServerConfig loads the structured config and returns the validated
// dev server view of it.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newDevServerConfig(cfg)
}

func newDevServerConfig(cfg *StructuredConfig) (*DevServerConfig, error) {
	serverCfg := &DevServerConfig{
		App: DevServerApp{
			Version:         cfg.App.Version,
			TokenSignKey:    cfg.App.TokenSignKey,
			TokenIssuer:     orDefault(cfg.App.TokenIssuer, DefaultTokenIssuer),
			TokenDuration:   orDefault(cfg.App.TokenDuration, DefaultTokenDuration),
			PasswordHashKey: orDefault(cfg.App.PasswordHashKey, cfg.App.TokenSignKey),
		},
		Server: DevServerHTTP{
			HTTPAddress:    orDefault(cfg.Server.HTTPAddress, DefaultServerAddress),
			RequestTimeout: orDefault(cfg.Server.RequestTimeout, DefaultServerRequestTimeout),
		},
	}

	if err := serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}
