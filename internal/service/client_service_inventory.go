// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-equip-keeper/internal/adapter"
	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/state"
	"github.com/MKhiriev/go-equip-keeper/internal/validators"
	"github.com/MKhiriev/go-equip-keeper/models"
)

type clientInventoryService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	mu        sync.Mutex
	inventory state.Inventory
	// epoch changes on Reset; results of requests begun in an older epoch
	// are dropped.
	epoch uint64

	logger *logger.Logger
}

func NewClientInventoryService(serverAdapter adapter.ServerAdapter, log *logger.Logger) InventoryService {
	return &clientInventoryService{
		adapter:   serverAdapter,
		validator: validators.NewInventoryValidator(),
		logger:    log,
	}
}

func (s *clientInventoryService) FetchAll(ctx context.Context) error {
	epoch := s.begin("fetch_all", "")
	items, err := s.adapter.ListLaptops(ctx)
	if err != nil {
		return s.fail(epoch, "fetch_all", "", err)
	}

	if !s.lockCurrent(epoch, "fetch_all", "") {
		return ErrStaleResult
	}
	s.inventory.ReplaceAll(items)
	s.inventory.Succeed("")
	s.mu.Unlock()

	s.logger.Info().Str("op", "fetch_all").Int("count", len(items)).Msg("laptops fetched")
	return nil
}

func (s *clientInventoryService) Add(ctx context.Context, input models.LaptopInput) error {
	if err := s.validator.Validate(ctx, input); err != nil {
		return err
	}

	epoch := s.begin("add", "")
	laptop, err := s.adapter.CreateLaptop(ctx, input)
	if err != nil {
		return s.fail(epoch, "add", "", err)
	}

	if !s.lockCurrent(epoch, "add", "") {
		return ErrStaleResult
	}
	s.inventory.Append(laptop)
	s.inventory.Succeed(MsgLaptopAdded)
	s.mu.Unlock()

	s.succeeded("add", laptop.ID, true)
	return nil
}

func (s *clientInventoryService) Update(ctx context.Context, id string, input models.LaptopInput) error {
	if err := requireLaptopID(id); err != nil {
		return err
	}
	if err := s.validator.Validate(ctx, input, validators.EditableLaptopFields...); err != nil {
		return err
	}

	epoch := s.begin("update", id)
	laptop, err := s.adapter.UpdateLaptop(ctx, id, input)
	if err != nil {
		return s.fail(epoch, "update", id, err)
	}

	if !s.lockCurrent(epoch, "update", id) {
		return ErrStaleResult
	}
	replaced := s.inventory.Replace(laptop)
	s.inventory.Succeed(MsgLaptopUpdated)
	s.inventory.SetEditingID("")
	s.mu.Unlock()

	s.succeeded("update", id, replaced)
	return nil
}

func (s *clientInventoryService) Delete(ctx context.Context, id string) error {
	if err := requireLaptopID(id); err != nil {
		return err
	}

	epoch := s.begin("delete", id)
	resp, err := s.adapter.DeleteLaptop(ctx, id)
	if err != nil {
		return s.fail(epoch, "delete", id, err)
	}

	if !s.lockCurrent(epoch, "delete", id) {
		return ErrStaleResult
	}
	removed := s.inventory.Remove(id)
	s.inventory.Succeed(successText(resp.Message, MsgLaptopDeleted))
	s.mu.Unlock()

	s.succeeded("delete", id, removed)
	return nil
}

func (s *clientInventoryService) Distribute(ctx context.Context, req models.DistributeRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	epoch := s.begin("distribute", req.LaptopID)
	resp, err := s.adapter.DistributeLaptop(ctx, req)
	if err != nil {
		return s.fail(epoch, "distribute", req.LaptopID, err)
	}

	if !s.lockCurrent(epoch, "distribute", req.LaptopID) {
		return ErrStaleResult
	}
	replaced := s.inventory.Replace(resp.Laptop)
	s.inventory.Succeed(successText(resp.Message, MsgLaptopDistributed))
	s.mu.Unlock()

	s.succeeded("distribute", req.LaptopID, replaced)
	return nil
}

func (s *clientInventoryService) Return(ctx context.Context, req models.ReturnRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	epoch := s.begin("return", req.LaptopID)
	resp, err := s.adapter.ReturnLaptop(ctx, req)
	if err != nil {
		return s.fail(epoch, "return", req.LaptopID, err)
	}

	if !s.lockCurrent(epoch, "return", req.LaptopID) {
		return ErrStaleResult
	}
	replaced := s.inventory.Replace(resp.Laptop)
	s.inventory.Succeed(successText(resp.Message, MsgLaptopReturned))
	s.mu.Unlock()

	s.succeeded("return", req.LaptopID, replaced)
	return nil
}

func (s *clientInventoryService) SetView(v state.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory.SetView(v)
}

func (s *clientInventoryService) SetEditingID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory.SetEditingID(id)
}

func (s *clientInventoryService) BeginEdit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory.BeginEdit(id)
}

func (s *clientInventoryService) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory.ClearBanner()
}

func (s *clientInventoryService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = state.Inventory{}
	s.epoch++
}

func (s *clientInventoryService) Route(decide func(state.Inventory) state.Decision) state.Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := decide(s.inventory.Clone())
	if d.Redirected {
		s.inventory.SetView(d.View)
		s.logger.Debug().Str("view", d.View.String()).Str("notice", string(d.Notice)).Msg("view redirected")
	}
	return d
}

func (s *clientInventoryService) Snapshot() state.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Clone()
}

func (s *clientInventoryService) begin(op, id string) uint64 {
	s.mu.Lock()
	s.inventory.Begin()
	epoch := s.epoch
	s.mu.Unlock()
	s.logger.Debug().Str("op", op).Str("laptop_id", id).Msg("laptop request started")
	return epoch
}

// lockCurrent takes the lock when the store is still in epoch. Otherwise the
// lock is released and the result must be dropped.
func (s *clientInventoryService) lockCurrent(epoch uint64, op, id string) bool {
	s.mu.Lock()
	if s.epoch == epoch {
		return true
	}
	s.mu.Unlock()

	s.logger.Debug().Str("op", op).Str("laptop_id", id).Msg("dropping result of a request issued before reset")
	return false
}

func (s *clientInventoryService) fail(epoch uint64, op, id string, err error) error {
	if !s.lockCurrent(epoch, op, id) {
		return fmt.Errorf("%w: %w", ErrStaleResult, err)
	}
	s.inventory.Fail(errorText(err, laptopFallbacks, true))
	s.mu.Unlock()

	s.logger.Err(err).Str("op", op).Str("laptop_id", id).Str("status", state.StatusFailed.String()).Msg("laptop request failed")
	return fmt.Errorf("%w: %w", ErrLaptopRequest, err)
}

func (s *clientInventoryService) succeeded(op, id string, applied bool) {
	s.logger.Info().Str("op", op).Str("laptop_id", id).Bool("applied", applied).
		Str("status", state.StatusSucceeded.String()).Msg("laptop request succeeded")
}

func requireLaptopID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", validators.ErrValidation, validators.ErrNoLaptopSelected)
	}
	return nil
}
