// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/utils"
	"github.com/MKhiriev/go-equip-keeper/models"
)

type memoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.Account
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &memoryUserRepository{
		byEmail: make(map[string]models.Account),
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, account models.Account) (models.Account, error) {
	key := emailKey(account.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		r.logger.Debug().Str("func", "*memoryUserRepository.CreateUser").Str("email", key).Msg("duplicate email")
		return models.Account{}, ErrUserAlreadyExists
	}

	account.ID = r.ids.Generate()
	r.byEmail[key] = account
	return account, nil
}

func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byEmail[emailKey(email)]
	if !ok {
		return models.Account{}, ErrUserNotFound
	}
	return account, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
