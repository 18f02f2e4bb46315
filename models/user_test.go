// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedSession_Empty(t *testing.T) {
	assert.True(t, CachedSession{}.Empty())
	assert.True(t, CachedSession{User: &User{Username: "a"}}.Empty())
	assert.False(t, CachedSession{Token: "t1"}.Empty())
}

func TestAuthResponse_Unmarshal(t *testing.T) {
	var resp AuthResponse
	require.NoError(t, json.Unmarshal([]byte(`{"token":"t1","user":{"username":"a","role":"admin"},"message":"Login successful"}`), &resp))

	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, User{Username: "a", Role: RoleAdmin}, resp.User)
	assert.Equal(t, "Login successful", resp.Message)
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", " ", "")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildVersion())
}
