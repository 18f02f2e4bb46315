// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-equip-keeper/models"
)

const (
	FieldName         = "name"
	FieldSerialNumber = "serial_number"
	FieldModel        = "model"
	FieldPrice        = "price"
	FieldOrigin       = "origin"

	FieldLaptopID       = "laptop_id"
	FieldUserName       = "user_name"
	FieldUserEmail      = "user_email"
	FieldUserPosition   = "user_position"
	FieldReturnedReason = "returned_reason"

	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUsername = "username"
	FieldRole     = "role"
)

// EditableLaptopFields are the laptop fields that must stay filled when an
// existing laptop is edited.
var EditableLaptopFields = []string{FieldName, FieldSerialNumber, FieldModel}

var allowedRoles = []string{models.RoleUser, models.RoleITStaff, models.RoleAdmin}

// InventoryValidator validates laptop, assignment and account forms.
type InventoryValidator struct {
}

func NewInventoryValidator() Validator {
	return &InventoryValidator{}
}

func (v *InventoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LaptopInput:
		return v.validateLaptopInput(ctx, value, fields...)
	case *models.LaptopInput:
		return v.validateLaptopInput(ctx, *value, fields...)

	case models.DistributeRequest:
		return v.validateDistributeRequest(ctx, value, fields...)
	case *models.DistributeRequest:
		return v.validateDistributeRequest(ctx, *value, fields...)

	case models.ReturnRequest:
		return v.validateReturnRequest(ctx, value, fields...)
	case *models.ReturnRequest:
		return v.validateReturnRequest(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// rule is a named check; it returns a sentinel from errors.go or nil.
type rule struct {
	field string
	check func() error
}

// run applies the rules selected by fields in declaration order and stops at
// the first violation.
func run(rules []rule, fields []string) error {
	selected := make(map[string]bool, len(fields))
	for _, f := range fields {
		selected[f] = true
	}

	known := make(map[string]bool, len(rules))
	for _, r := range rules {
		known[r.field] = true
	}
	for f := range selected {
		if !known[f] {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	for _, r := range rules {
		if len(selected) > 0 && !selected[r.field] {
			continue
		}
		if err := r.check(); err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}
	return nil
}

func required(value string, err error) func() error {
	return func() error {
		if strings.TrimSpace(value) == "" {
			return err
		}
		return nil
	}
}

func validEmail(value string) func() error {
	return func() error {
		addr, err := mail.ParseAddress(strings.TrimSpace(value))
		if err != nil || addr.Name != "" || !strings.Contains(addr.Address, "@") {
			return ErrInvalidEmail
		}
		return nil
	}
}

func (v *InventoryValidator) validateLaptopInput(_ context.Context, in models.LaptopInput, fields ...string) error {
	return run([]rule{
		{FieldName, required(in.Name, ErrEmptyName)},
		{FieldSerialNumber, required(in.SerialNumber, ErrEmptySerialNumber)},
		{FieldModel, required(in.Model, ErrEmptyModel)},
		{FieldPrice, func() error {
			if in.Price <= 0 {
				return ErrInvalidPrice
			}
			return nil
		}},
		{FieldOrigin, required(in.Origin, ErrEmptyOrigin)},
	}, fields)
}

func (v *InventoryValidator) validateDistributeRequest(_ context.Context, req models.DistributeRequest, fields ...string) error {
	return run([]rule{
		{FieldLaptopID, required(req.LaptopID, ErrNoLaptopSelected)},
		{FieldUserName, required(req.UserName, ErrEmptyUserName)},
		{FieldUserEmail, validEmail(req.UserEmail)},
		{FieldUserPosition, required(req.UserPosition, ErrEmptyPosition)},
	}, fields)
}

func (v *InventoryValidator) validateReturnRequest(_ context.Context, req models.ReturnRequest, fields ...string) error {
	return run([]rule{
		{FieldLaptopID, required(req.LaptopID, ErrNoLaptopSelected)},
		{FieldReturnedReason, required(req.ReturnedReason, ErrEmptyReason)},
	}, fields)
}

func (v *InventoryValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	return run([]rule{
		{FieldEmail, validEmail(creds.Email)},
		{FieldPassword, required(creds.Password, ErrEmptyPassword)},
	}, fields)
}

func (v *InventoryValidator) validateRegistration(_ context.Context, reg models.Registration, fields ...string) error {
	return run([]rule{
		{FieldUsername, required(reg.Username, ErrEmptyUsername)},
		{FieldEmail, validEmail(reg.Email)},
		{FieldPassword, required(reg.Password, ErrEmptyPassword)},
		{FieldRole, func() error {
			for _, r := range allowedRoles {
				if reg.Role == r {
					return nil
				}
			}
			return ErrInvalidRole
		}},
	}, fields)
}
