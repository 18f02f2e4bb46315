// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("APP_VERSION", "1.4.0")
	t.Setenv("APP_TOKEN_SIGN_KEY", "jwt_secret")
	t.Setenv("APP_TOKEN_ISSUER", "issuer")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("APP_PASSWORD_HASH_KEY", "hash_secret")
	t.Setenv("STORAGE_DB_DSN", "/tmp/cache.db")
	t.Setenv("SERVER_ADDRESS", "localhost:5001")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "20s")
	t.Setenv("ADAPTER_ADDRESS", "http://localhost:5001")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")
	t.Setenv("UI_BANNER_TIMEOUT", "1500ms")
	t.Setenv("LOG_FILE", "/tmp/client.log")
	t.Setenv("CONFIG", "/etc/equip-keeper.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "hash_secret", cfg.App.PasswordHashKey)
	assert.Equal(t, "/tmp/cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:5001", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:5001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.UI.BannerTimeout)
	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
	assert.Equal(t, "/etc/equip-keeper.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	for _, key := range []string{"ADAPTER_ADDRESS", "STORAGE_DB_DSN", "UI_BANNER_TIMEOUT", "CONFIG"} {
		t.Setenv(key, "")
	}

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.UI.BannerTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	var cfg StructuredConfig
	err := parseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
