// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged configuration of all sources.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds application-wide settings: the version and, for the dev
	// server, the token and password hashing parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the credential cache database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the dev server listen settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the inventory API connection settings of the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// UI holds terminal UI settings.
	UI UI `envPrefix:"UI_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

type App struct {
	Version string `env:"VERSION"`

	TokenSignKey  string        `env:"TOKEN_SIGN_KEY"`
	TokenIssuer   string        `env:"TOKEN_ISSUER"`
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

type DB struct {
	// DSN is the sqlite file of the credential cache.
	DSN string `env:"DSN"`
}

type Server struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type Adapter struct {
	// HTTPAddress is the base URL of the inventory API, e.g.
	// "http://localhost:5000".
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type UI struct {
	// BannerTimeout is how long success and error banners stay visible.
	BannerTimeout time.Duration `env:"BANNER_TIMEOUT"`
}

type Log struct {
	// File is the client log file. Empty means "logs" next to the binary.
	File string `env:"FILE"`
}

// GetStructuredConfig merges env, command-line flags and the JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
