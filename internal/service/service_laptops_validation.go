// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-equip-keeper/internal/validators"
	"github.com/MKhiriev/go-equip-keeper/models"
)

// LaptopValidationService rejects invalid input before it reaches the
// wrapped LaptopService.
type LaptopValidationService struct {
	inner     LaptopService
	validator validators.Validator
}

func NewLaptopValidationService() LaptopServiceWrapper {
	return &LaptopValidationService{
		validator: validators.NewInventoryValidator(),
	}
}

func (v *LaptopValidationService) Wrap(inner LaptopService) LaptopService {
	v.inner = inner
	return v
}

func (v *LaptopValidationService) ListLaptops(ctx context.Context) ([]models.Laptop, error) {
	return v.inner.ListLaptops(ctx)
}

func (v *LaptopValidationService) CreateLaptop(ctx context.Context, input models.LaptopInput) (models.Laptop, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Laptop{}, fmt.Errorf("error during laptop validation before saving: %w", err)
	}
	return v.inner.CreateLaptop(ctx, input)
}

func (v *LaptopValidationService) UpdateLaptop(ctx context.Context, id string, input models.LaptopInput) (models.Laptop, error) {
	if err := v.validator.Validate(ctx, input, validators.EditableLaptopFields...); err != nil {
		return models.Laptop{}, fmt.Errorf("error during laptop validation before update: %w", err)
	}
	return v.inner.UpdateLaptop(ctx, id, input)
}

func (v *LaptopValidationService) DeleteLaptop(ctx context.Context, id string) error {
	return v.inner.DeleteLaptop(ctx, id)
}

func (v *LaptopValidationService) DistributeLaptop(ctx context.Context, req models.DistributeRequest) (models.Laptop, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Laptop{}, fmt.Errorf("error during distribution validation: %w", err)
	}
	return v.inner.DistributeLaptop(ctx, req)
}

func (v *LaptopValidationService) ReturnLaptop(ctx context.Context, req models.ReturnRequest) (models.Laptop, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Laptop{}, fmt.Errorf("error during return validation: %w", err)
	}
	return v.inner.ReturnLaptop(ctx, req)
}
