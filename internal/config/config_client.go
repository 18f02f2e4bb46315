// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	DefaultAdapterAddress = "http://localhost:5000"
	DefaultRequestTimeout = 15 * time.Second
	DefaultCacheDSN       = "equip-keeper.db"
	DefaultBannerTimeout  = 3 * time.Second
)

type ClientApp struct {
	Version string
}

type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

type ClientDB struct {
	DSN string
}

type ClientStorage struct {
	DB ClientDB
}

type ClientUI struct {
	BannerTimeout time.Duration
}

type ClientLog struct {
	File string
}

// ClientConfig is the configuration of the terminal client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	UI      ClientUI
	Log     ClientLog
}

// GetClientConfig loads the structured config and returns the validated
// client view of it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    orDefault(cfg.Adapter.HTTPAddress, DefaultAdapterAddress),
			RequestTimeout: orDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: orDefault(cfg.Storage.DB.DSN, DefaultCacheDSN)},
		},
		UI: ClientUI{
			BannerTimeout: orDefault(cfg.UI.BannerTimeout, DefaultBannerTimeout),
		},
		Log: ClientLog{
			File: cfg.Log.File,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
