// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of both binaries.
//
// The client side (client_*.go) owns the two stores of the terminal client:
// [SessionService] for authentication and [InventoryService] for the laptop
// collection and the current view. Every store serializes its own mutations
// and hands out copies through Snapshot, so requests may run on any goroutine
// and land in any order. [AuthGate] applies [state.Gate] after each
// transition.
//
// The server side (service_*.go) implements the inventory API served by the
// development server.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-equip-keeper/internal/state"
	"github.com/MKhiriev/go-equip-keeper/models"
)

// SessionService is the session store of the client.
type SessionService interface {
	// Restore loads the cached credentials into memory. A broken cache is
	// logged and treated as empty.
	Restore(ctx context.Context)

	// Login signs in with email and password. On success the token and user
	// are kept in memory and written to the credential cache. On failure the
	// session is signed out and the error banner carries the server message
	// or a generic fallback. Invalid input is rejected before any request and
	// leaves the store untouched.
	Login(ctx context.Context, creds models.Credentials) error

	// Register creates an account and signs it in, like Login. An empty role
	// defaults to [models.RoleUser].
	Register(ctx context.Context, reg models.Registration) error

	// Logout always ends the local session and clears the credential cache,
	// even when the server call fails. Logging out without a session is a
	// no-op.
	Logout(ctx context.Context) error

	// ClearMessages dismisses the banner and leaves everything else alone.
	ClearMessages()

	// Snapshot returns a copy of the current session.
	Snapshot() state.Session

	// Valid reports whether the session may access protected views.
	Valid() bool
}

// InventoryService is the laptop store of the client. It also holds the view
// router state.
type InventoryService interface {
	// FetchAll replaces the collection with the server's.
	FetchAll(ctx context.Context) error

	// Add creates a laptop and appends it to the collection.
	Add(ctx context.Context, input models.LaptopInput) error

	// Update edits laptop id in place and drops the editing id.
	Update(ctx context.Context, id string, input models.LaptopInput) error

	// Delete removes laptop id.
	Delete(ctx context.Context, id string) error

	// Distribute assigns a laptop to a person.
	Distribute(ctx context.Context, req models.DistributeRequest) error

	// Return takes a laptop back.
	Return(ctx context.Context, req models.ReturnRequest) error

	// SetView navigates. See [state.Inventory.SetView].
	SetView(v state.View)

	// SetEditingID targets a laptop for the edit view.
	SetEditingID(id string)

	// BeginEdit targets laptop id and opens the edit view in one step.
	BeginEdit(id string)

	// ClearMessages dismisses the banner.
	ClearMessages()

	// Reset drops the collection and returns to the home view with an idle
	// status. It is used after logout so that the next user starts clean.
	Reset()

	// Route evaluates decide against the current state and applies the
	// resulting view atomically.
	Route(decide func(state.Inventory) state.Decision) state.Decision

	// Snapshot returns a copy of the current state.
	Snapshot() state.Inventory
}

// Clock returns the current time. It is replaced in tests.
type Clock func() time.Time
