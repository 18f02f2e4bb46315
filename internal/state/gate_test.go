// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func inventoryAt(v View, editingID string, status RequestStatus, items ...string) Inventory {
	var inv Inventory
	if len(items) > 0 {
		inv.ReplaceAll(laptops(items...))
	}
	inv.SetEditingID(editingID)
	inv.SetView(v)
	inv.status = status
	return inv
}

func TestGate_NoSessionForcesLogin(t *testing.T) {
	tests := []struct {
		name       string
		view       View
		wantView   View
		redirected bool
		notice     Notice
	}{
		{"home redirects silently", ViewHome, ViewLogin, true, NoticeNone},
		{"list redirects with notice", ViewListAll, ViewLogin, true, NoticeLoginRequired},
		{"add redirects with notice", ViewAddLaptop, ViewLogin, true, NoticeLoginRequired},
		{"edit redirects with notice", ViewEditLaptop, ViewLogin, true, NoticeLoginRequired},
		{"login stays", ViewLogin, ViewLogin, false, NoticeNone},
		{"register stays", ViewRegister, ViewRegister, false, NoticeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Gate(false, inventoryAt(tt.view, "", StatusIdle))
			assert.Equal(t, tt.wantView, d.View)
			assert.Equal(t, tt.redirected, d.Redirected)
			assert.Equal(t, tt.notice, d.Notice)
		})
	}
}

func TestGate_ValidSessionOnLoginStays(t *testing.T) {
	d := Gate(true, inventoryAt(ViewLogin, "", StatusSucceeded))

	assert.Equal(t, Decision{View: ViewLogin}, d)
}

func TestGate_ValidSessionPassesThrough(t *testing.T) {
	for _, v := range []View{ViewHome, ViewAddLaptop, ViewDistributeForm, ViewReturnForm,
		ViewListAll, ViewListDistributed, ViewRegister} {
		d := Gate(true, inventoryAt(v, "", StatusSucceeded))
		assert.Equal(t, Decision{View: v}, d, v.String())
	}
}

func TestGate_EditTarget(t *testing.T) {
	tests := []struct {
		name     string
		inv      Inventory
		expected Decision
	}{
		{
			name:     "found",
			inv:      inventoryAt(ViewEditLaptop, "L1", StatusSucceeded, "L1"),
			expected: Decision{View: ViewEditLaptop},
		},
		{
			name:     "missing after load",
			inv:      inventoryAt(ViewEditLaptop, "L9", StatusSucceeded, "L1"),
			expected: Decision{View: ViewListAll, Redirected: true, Notice: NoticeLaptopNotFound},
		},
		{
			name:     "missing while loading",
			inv:      inventoryAt(ViewEditLaptop, "L9", StatusPending, "L1"),
			expected: Decision{View: ViewEditLaptop},
		},
		{
			name:     "missing before first load",
			inv:      inventoryAt(ViewEditLaptop, "L9", StatusIdle),
			expected: Decision{View: ViewEditLaptop},
		},
		{
			name:     "missing after failed load",
			inv:      inventoryAt(ViewEditLaptop, "L9", StatusFailed),
			expected: Decision{View: ViewEditLaptop},
		},
		{
			name:     "missing after a failed delete on a loaded collection",
			inv:      inventoryAt(ViewEditLaptop, "L9", StatusFailed, "L1"),
			expected: Decision{View: ViewListAll, Redirected: true, Notice: NoticeLaptopNotFound},
		},
		{
			name:     "missing after an add before any fetch",
			inv:      inventoryAt(ViewEditLaptop, "L9", StatusSucceeded),
			expected: Decision{View: ViewEditLaptop},
		},
		{
			name:     "no target",
			inv:      inventoryAt(ViewEditLaptop, "", StatusSucceeded, "L1"),
			expected: Decision{View: ViewListAll, Redirected: true},
		},
		{
			name:     "no target while loading",
			inv:      inventoryAt(ViewEditLaptop, "", StatusPending),
			expected: Decision{View: ViewEditLaptop},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Gate(true, tt.inv))
		})
	}
}

func TestGate_DoesNotMutateInput(t *testing.T) {
	inv := inventoryAt(ViewEditLaptop, "L9", StatusSucceeded, "L1")

	_ = Gate(true, inv)

	assert.Equal(t, ViewEditLaptop, inv.View())
	assert.Equal(t, "L9", inv.EditingID())
}
