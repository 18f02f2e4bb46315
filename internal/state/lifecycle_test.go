// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "succeeded", StatusSucceeded.String())
	assert.Equal(t, "failed", StatusFailed.String())
}

func TestLifecycle_Transitions(t *testing.T) {
	var l Lifecycle
	assert.Equal(t, StatusIdle, l.Status())

	l.Begin()
	assert.Equal(t, StatusPending, l.Status())

	l.Succeed("Laptop added successfully!")
	assert.Equal(t, StatusSucceeded, l.Status())
	assert.Equal(t, "Laptop added successfully!", l.SuccessMessage())
	assert.Empty(t, l.ErrorMessage())

	// повторный запрос снова уходит в pending и гасит баннер
	l.Begin()
	assert.Equal(t, StatusPending, l.Status())
	assert.Empty(t, l.SuccessMessage())

	l.Fail("Network error")
	assert.Equal(t, StatusFailed, l.Status())
	assert.Equal(t, "Network error", l.ErrorMessage())
	assert.Empty(t, l.SuccessMessage())
}

func TestLifecycle_BannerMutualExclusion(t *testing.T) {
	var l Lifecycle

	l.SetError("boom")
	l.SetSuccess("ok")
	assert.Equal(t, "ok", l.SuccessMessage())
	assert.Empty(t, l.ErrorMessage())

	l.SetError("boom")
	assert.Equal(t, "boom", l.ErrorMessage())
	assert.Empty(t, l.SuccessMessage())

	l.ClearBanner()
	assert.Empty(t, l.ErrorMessage())
	assert.Empty(t, l.SuccessMessage())
	assert.Equal(t, StatusIdle, l.Status())
}
