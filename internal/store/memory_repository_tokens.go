// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-equip-keeper/internal/logger"
)

type memoryTokenRepository struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time

	logger *logger.Logger
}

func NewMemoryTokenRepository(logger *logger.Logger) TokenRepository {
	return &memoryTokenRepository{
		revoked: make(map[string]time.Time),
		now:     time.Now,
		logger:  logger,
	}
}

func (r *memoryTokenRepository) RevokeToken(ctx context.Context, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.revoked[token] = expiresAt
	return nil
}

// IsRevoked also forgets every revocation whose token has expired by now.
func (r *memoryTokenRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for t, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, t)
		}
	}

	_, ok := r.revoked[token]
	return ok, nil
}
