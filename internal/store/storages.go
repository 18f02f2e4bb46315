// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-equip-keeper/internal/logger"

// Storages groups the repositories of the development server.
type Storages struct {
	UserRepository   UserRepository
	LaptopRepository LaptopRepository
	TokenRepository  TokenRepository
}

// NewMemoryStorages returns empty in-memory repositories.
func NewMemoryStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new in-memory storages...")

	return &Storages{
		UserRepository:   NewMemoryUserRepository(logger),
		LaptopRepository: NewMemoryLaptopRepository(logger),
		TokenRepository:  NewMemoryTokenRepository(logger),
	}
}
