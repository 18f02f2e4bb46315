// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-equip-keeper/internal/config"
	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	LaptopService  LaptopService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.DevServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.TokenRepository, cfg, logger),
		LaptopService:  NewLaptopValidationService().Wrap(NewLaptopService(storages.LaptopRepository, logger)),
		AppInfoService: appInfo,
	}, nil
}
