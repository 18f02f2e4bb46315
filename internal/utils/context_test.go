// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserEmailCtxKey(t *testing.T) {
	assert.Equal(t, "userEmail", UserEmailCtxKey.String())
}

func TestGetUserEmailFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{"stored", WithUserEmail(context.Background(), "a@b.io"), "a@b.io", true},
		{"missing", context.Background(), "", false},
		{"empty", WithUserEmail(context.Background(), ""), "", false},
		{"wrong type", context.WithValue(context.Background(), UserEmailCtxKey, 42), "", false},
		{"other key", context.WithValue(context.Background(), contextKey("other"), "a@b.io"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetUserEmailFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
