// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsFetch(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		view          View
		status        RequestStatus
		want          bool
	}{
		{"signed out never fetches", false, ViewListAll, StatusIdle, false},
		{"home on idle", true, ViewHome, StatusIdle, true},
		{"home after failure", true, ViewHome, StatusFailed, false},
		{"list on idle", true, ViewListAll, StatusIdle, true},
		{"list retries after failure", true, ViewListAll, StatusFailed, true},
		{"distributed list retries", true, ViewListDistributed, StatusFailed, true},
		{"return form on idle", true, ViewReturnForm, StatusIdle, true},
		{"return form after failure", true, ViewReturnForm, StatusFailed, false},
		{"distribute form retries", true, ViewDistributeForm, StatusFailed, true},
		{"edit retries", true, ViewEditLaptop, StatusFailed, true},
		{"add form never fetches", true, ViewAddLaptop, StatusIdle, false},
		{"loaded list", true, ViewListAll, StatusSucceeded, false},
		{"pending list", true, ViewListAll, StatusPending, false},
		{"login view", true, ViewLogin, StatusIdle, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := inventoryAt(tt.view, "L1", tt.status)
			assert.Equal(t, tt.want, NeedsFetch(tt.authenticated, inv))
		})
	}
}
