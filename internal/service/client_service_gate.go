// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-equip-keeper/internal/state"
)

// AuthGate evaluates [state.Gate] against the live stores.
type AuthGate struct {
	session   SessionService
	inventory InventoryService
}

func NewAuthGate(session SessionService, inventory InventoryService) *AuthGate {
	return &AuthGate{session: session, inventory: inventory}
}

// Enforce runs the gate once and applies its redirect. The returned notice,
// if any, is meant to be shown once.
func (g *AuthGate) Enforce() state.Decision {
	valid := g.session.Valid()
	return g.inventory.Route(func(inv state.Inventory) state.Decision {
		return state.Gate(valid, inv)
	})
}
