// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the inventory REST API.
//
// [ServerAdapter] hides resty and the wire format from the service layer.
// Non-2xx responses come back as [*APIError] values that wrap one of the
// sentinel errors of this package, so callers can match them with
// [errors.Is] ([ErrUnauthorized] for 401 and so on) and still read the
// server's message. Failures below HTTP wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-equip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client side of the inventory API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every request except login
	// and register.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Login exchanges credentials for a token. On success the token is stored
	// via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Register creates an account and signs it in. On success the token is
	// stored via SetToken.
	Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error)

	// Logout ends the session on the server. The stored token is dropped
	// whatever the outcome.
	Logout(ctx context.Context) (models.MessageResponse, error)

	// ListLaptops returns the whole collection in server order.
	ListLaptops(ctx context.Context) ([]models.Laptop, error)

	// CreateLaptop adds a laptop and returns it with its server id.
	CreateLaptop(ctx context.Context, input models.LaptopInput) (models.Laptop, error)

	// UpdateLaptop replaces the editable fields of laptop id.
	UpdateLaptop(ctx context.Context, id string, input models.LaptopInput) (models.Laptop, error)

	// DeleteLaptop removes laptop id.
	DeleteLaptop(ctx context.Context, id string) (models.MessageResponse, error)

	// DistributeLaptop assigns a laptop to a person.
	DistributeLaptop(ctx context.Context, req models.DistributeRequest) (models.LaptopResponse, error)

	// ReturnLaptop takes a laptop back from its assignee.
	ReturnLaptop(ctx context.Context, req models.ReturnRequest) (models.LaptopResponse, error)
}
