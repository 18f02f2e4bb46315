// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence of both binaries.
//
// The client keeps its credential cache in sqlite: a small key/value table
// holding the bearer token and the serialized identity of the signed in user,
// so a session survives restarts. The development server keeps users,
// laptops and revoked tokens in memory.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-equip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_cache_mock.go -package=mock

// CredentialCache is the durable copy of the session.
type CredentialCache interface {
	// Load returns the cached session. An empty cache yields a session for
	// which Empty reports true and a nil error.
	Load(ctx context.Context) (models.CachedSession, error)

	// Save replaces the cached session. Saving a session without a token is
	// the same as Clear.
	Save(ctx context.Context, session models.CachedSession) error

	// Clear removes token and user.
	Clear(ctx context.Context) error
}

// UserRepository stores the accounts of the development server.
type UserRepository interface {
	// CreateUser stores account under a fresh id. The email is unique,
	// compared case-insensitively.
	CreateUser(ctx context.Context, account models.Account) (models.Account, error)

	// FindUserByEmail returns the account registered with email.
	FindUserByEmail(ctx context.Context, email string) (models.Account, error)
}

// LaptopRepository stores the inventory of the development server in
// insertion order.
type LaptopRepository interface {
	ListLaptops(ctx context.Context) ([]models.Laptop, error)

	// CreateLaptop stores laptop under a fresh id. Serial numbers are unique.
	CreateLaptop(ctx context.Context, laptop models.Laptop) (models.Laptop, error)

	GetLaptop(ctx context.Context, id string) (models.Laptop, error)

	// UpdateLaptop replaces the laptop with the same id.
	UpdateLaptop(ctx context.Context, laptop models.Laptop) (models.Laptop, error)

	DeleteLaptop(ctx context.Context, id string) error
}

// TokenRepository remembers tokens revoked by logout until they expire.
type TokenRepository interface {
	RevokeToken(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
