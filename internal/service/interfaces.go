// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-equip-keeper/models"
)

// AuthService manages accounts and bearer tokens of the development server.
type AuthService interface {
	RegisterUser(ctx context.Context, reg models.Registration) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed JWT whose subject is the user's email.
	CreateToken(ctx context.Context, user models.User) (string, error)

	// ParseToken validates token and returns its subject. Revoked tokens are
	// rejected like expired ones.
	ParseToken(ctx context.Context, token string) (string, error)

	// RevokeToken makes token unusable until it expires.
	RevokeToken(ctx context.Context, token string) error
}

// LaptopService manages the inventory of the development server.
type LaptopService interface {
	ListLaptops(ctx context.Context) ([]models.Laptop, error)
	CreateLaptop(ctx context.Context, input models.LaptopInput) (models.Laptop, error)
	UpdateLaptop(ctx context.Context, id string, input models.LaptopInput) (models.Laptop, error)
	DeleteLaptop(ctx context.Context, id string) error
	DistributeLaptop(ctx context.Context, req models.DistributeRequest) (models.Laptop, error)
	ReturnLaptop(ctx context.Context, req models.ReturnRequest) (models.Laptop, error)
}

// LaptopServiceWrapper defines middleware composition for LaptopService.
// Implementations wrap an existing LaptopService to add behavior such as
// validation.
type LaptopServiceWrapper interface {
	Wrap(LaptopService) LaptopService
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
