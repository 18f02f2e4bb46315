// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the development server.
package handler

import (
	"github.com/MKhiriev/go-equip-keeper/internal/config"
	"github.com/MKhiriev/go-equip-keeper/internal/handler/http"
	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.DevServerHTTP, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
