// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/utils"
	"github.com/MKhiriev/go-equip-keeper/models"
)

type memoryLaptopRepository struct {
	mu      sync.RWMutex
	laptops []models.Laptop
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewMemoryLaptopRepository(logger *logger.Logger) LaptopRepository {
	logger.Debug().Msg("LaptopRepository created")
	return &memoryLaptopRepository{
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (r *memoryLaptopRepository) ListLaptops(ctx context.Context) ([]models.Laptop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.laptops), nil
}

func (r *memoryLaptopRepository) CreateLaptop(ctx context.Context, laptop models.Laptop) (models.Laptop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.serialTaken(laptop.SerialNumber, "") {
		return models.Laptop{}, ErrSerialNumberTaken
	}

	laptop.ID = r.ids.Generate()
	r.laptops = append(r.laptops, laptop)
	r.logger.Debug().Str("func", "*memoryLaptopRepository.CreateLaptop").Str("laptop_id", laptop.ID).Msg("laptop stored")
	return laptop, nil
}

func (r *memoryLaptopRepository) GetLaptop(ctx context.Context, id string) (models.Laptop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return models.Laptop{}, ErrLaptopNotFound
	}
	return r.laptops[idx], nil
}

func (r *memoryLaptopRepository) UpdateLaptop(ctx context.Context, laptop models.Laptop) (models.Laptop, error) {
	if laptop.ID == "" {
		return models.Laptop{}, ErrLaptopIDNotAssigned
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(laptop.ID)
	if idx < 0 {
		return models.Laptop{}, ErrLaptopNotFound
	}
	if r.serialTaken(laptop.SerialNumber, laptop.ID) {
		return models.Laptop{}, ErrSerialNumberTaken
	}

	r.laptops[idx] = laptop
	return laptop, nil
}

func (r *memoryLaptopRepository) DeleteLaptop(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrLaptopNotFound
	}
	r.laptops = slices.Delete(r.laptops, idx, idx+1)
	return nil
}

func (r *memoryLaptopRepository) indexOf(id string) int {
	return slices.IndexFunc(r.laptops, func(l models.Laptop) bool { return l.ID == id })
}

// serialTaken reports whether another laptop than exceptID uses serial.
func (r *memoryLaptopRepository) serialTaken(serial, exceptID string) bool {
	return slices.ContainsFunc(r.laptops, func(l models.Laptop) bool {
		return l.SerialNumber == serial && l.ID != exceptID
	})
}
