// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/service"
)

var ErrNilDependency = errors.New("client dependency is nil")

type App struct {
	services *service.ClientServices
	ui       UI
	storages io.Closer
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, storages io.Closer, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || storages == nil {
		return nil, ErrNilDependency
	}

	return &App{services: services, ui: ui, storages: storages, logger: log}, nil
}

// Run restores the cached session and blocks in the UI. The credential cache
// is closed when the UI returns, whatever the outcome.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Msg("closing client storages failed")
			err = errors.Join(err, fmt.Errorf("close storages: %w", closeErr))
		}
	}()

	a.services.SessionService.Restore(ctx)

	a.logger.Info().Msg("client started")
	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
