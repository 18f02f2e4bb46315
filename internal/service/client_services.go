// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-equip-keeper/internal/adapter"
	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/store"
)

type ClientServices struct {
	SessionService   SessionService
	InventoryService InventoryService
	AuthGate         *AuthGate
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(serverAdapter, storages.Credentials, log)
	inventorySvc := NewClientInventoryService(serverAdapter, log)

	return &ClientServices{
		SessionService:   sessionSvc,
		InventoryService: inventorySvc,
		AuthGate:         NewAuthGate(sessionSvc, inventorySvc),
	}
}
