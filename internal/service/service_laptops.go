// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/store"
	"github.com/MKhiriev/go-equip-keeper/models"
)

type laptopService struct {
	laptopRepository store.LaptopRepository
	now              Clock

	logger *logger.Logger
}

func NewLaptopService(laptopRepository store.LaptopRepository, logger *logger.Logger) LaptopService {
	return &laptopService{
		laptopRepository: laptopRepository,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *laptopService) ListLaptops(ctx context.Context) ([]models.Laptop, error) {
	laptops, err := s.laptopRepository.ListLaptops(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing laptops: %w", err)
	}
	return laptops, nil
}

func (s *laptopService) CreateLaptop(ctx context.Context, input models.LaptopInput) (models.Laptop, error) {
	laptop := models.Laptop{
		Name:         input.Name,
		SerialNumber: input.SerialNumber,
		Model:        input.Model,
		Price:        input.Price,
		Origin:       input.Origin,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.laptopRepository.CreateLaptop(ctx, laptop)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("serial_number", input.SerialNumber).Msg("laptop creation failed")
		return models.Laptop{}, fmt.Errorf("error creating laptop: %w", err)
	}
	return created, nil
}

// UpdateLaptop replaces the editable fields and keeps the assignment and
// return history.
func (s *laptopService) UpdateLaptop(ctx context.Context, id string, input models.LaptopInput) (models.Laptop, error) {
	laptop, err := s.laptopRepository.GetLaptop(ctx, id)
	if err != nil {
		return models.Laptop{}, fmt.Errorf("error loading laptop %s: %w", id, err)
	}

	laptop.Name = input.Name
	laptop.SerialNumber = input.SerialNumber
	laptop.Model = input.Model
	laptop.Price = input.Price
	laptop.Origin = input.Origin

	updated, err := s.laptopRepository.UpdateLaptop(ctx, laptop)
	if err != nil {
		return models.Laptop{}, fmt.Errorf("error updating laptop %s: %w", id, err)
	}
	return updated, nil
}

func (s *laptopService) DeleteLaptop(ctx context.Context, id string) error {
	if err := s.laptopRepository.DeleteLaptop(ctx, id); err != nil {
		return fmt.Errorf("error deleting laptop %s: %w", id, err)
	}
	return nil
}

// DistributeLaptop assigns an available laptop. The previous return reason
// is kept as history; the distribution flag takes precedence over it.
func (s *laptopService) DistributeLaptop(ctx context.Context, req models.DistributeRequest) (models.Laptop, error) {
	laptop, err := s.laptopRepository.GetLaptop(ctx, req.LaptopID)
	if err != nil {
		return models.Laptop{}, fmt.Errorf("error loading laptop %s: %w", req.LaptopID, err)
	}
	if laptop.IsDistributed() {
		return models.Laptop{}, ErrLaptopAlreadyDistributed
	}

	laptop.DistributedStatus = true
	laptop.AssignedTo = &models.Assignee{
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		UserPhoneNumber: req.UserPhoneNumber,
		UserPosition:    req.UserPosition,
	}

	updated, err := s.laptopRepository.UpdateLaptop(ctx, laptop)
	if err != nil {
		return models.Laptop{}, fmt.Errorf("error distributing laptop %s: %w", req.LaptopID, err)
	}
	return updated, nil
}

func (s *laptopService) ReturnLaptop(ctx context.Context, req models.ReturnRequest) (models.Laptop, error) {
	laptop, err := s.laptopRepository.GetLaptop(ctx, req.LaptopID)
	if err != nil {
		return models.Laptop{}, fmt.Errorf("error loading laptop %s: %w", req.LaptopID, err)
	}
	if !laptop.IsDistributed() {
		return models.Laptop{}, ErrLaptopNotDistributed
	}

	returnedAt := s.now().UTC()
	laptop.DistributedStatus = false
	laptop.AssignedTo = nil
	laptop.ReturnedReason = req.ReturnedReason
	laptop.ReturnedAt = &returnedAt

	updated, err := s.laptopRepository.UpdateLaptop(ctx, laptop)
	if err != nil {
		return models.Laptop{}, fmt.Errorf("error returning laptop %s: %w", req.LaptopID, err)
	}
	return updated, nil
}
