// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_Deterministic(t *testing.T) {
	a := HashPassword("secret", "key")
	b := HashPassword("secret", "key")

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, "secret", a)
}

func TestHashPassword_KeyMatters(t *testing.T) {
	assert.NotEqual(t, HashPassword("secret", "key1"), HashPassword("secret", "key2"))
}

func TestCheckPassword(t *testing.T) {
	hashed := HashPassword("secret", "key")

	assert.True(t, CheckPassword("secret", hashed, "key"))
	assert.False(t, CheckPassword("Secret", hashed, "key"))
	assert.False(t, CheckPassword("secret", hashed, "other"))
	assert.False(t, CheckPassword("secret", "", "key"))
}
