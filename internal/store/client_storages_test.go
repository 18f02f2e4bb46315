// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-equip-keeper/internal/config"
	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/models"
)

func openTestStorages(t *testing.T, dsn string) *ClientStorages {
	t.Helper()
	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED") {
		t.Skip("sqlite3 driver requires cgo")
	}
	require.NoError(t, err)
	return s
}

// TestClientStorages_SurvivesRestart проверяет, что сессия переживает перезапуск клиента
func TestClientStorages_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "cache.db")

	first := openTestStorages(t, dsn)
	require.NoError(t, first.Credentials.Save(ctx, models.CachedSession{
		Token: "t1",
		User:  &models.User{Username: "a", Role: models.RoleAdmin},
	}))
	require.NoError(t, first.Close())

	second := openTestStorages(t, dsn)
	defer second.Close()

	got, err := second.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, "a", got.User.Username)

	require.NoError(t, second.Credentials.Save(ctx, models.CachedSession{Token: "t2"}))
	got, err = second.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.Token)
	assert.Nil(t, got.User)

	require.NoError(t, second.Credentials.Clear(ctx))
	got, err = second.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
