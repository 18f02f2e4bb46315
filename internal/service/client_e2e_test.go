// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-equip-keeper/internal/adapter"
	"github.com/MKhiriev/go-equip-keeper/internal/config"
	handlerhttp "github.com/MKhiriev/go-equip-keeper/internal/handler/http"
	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/service"
	"github.com/MKhiriev/go-equip-keeper/internal/state"
	"github.com/MKhiriev/go-equip-keeper/internal/store"
	"github.com/MKhiriev/go-equip-keeper/models"
)

type e2eEnv struct {
	server   *httptest.Server
	dsn      string
	services *service.ClientServices
	storages *store.ClientStorages
}

func startDevServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.Nop()
	services, err := service.NewServices(store.NewMemoryStorages(log), config.DevServerApp{
		Version: "1.0.0", TokenSignKey: "secret", TokenIssuer: "equip-keeper", TokenDuration: time.Hour,
	}, log)
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, log).Init())
	t.Cleanup(srv.Close)
	return srv
}

// newClient wires the client the same way cmd/client does, against srv and
// the credential cache at dsn.
func newClient(t *testing.T, srvURL, dsn string) (*service.ClientServices, *store.ClientStorages) {
	t.Helper()

	log := logger.Nop()
	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, log)
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED") {
		t.Skip("sqlite3 driver requires cgo")
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srvURL, RequestTimeout: 5 * time.Second}, log)
	require.NoError(t, err)

	return service.NewClientServices(storages, serverAdapter, log), storages
}

func newE2E(t *testing.T) *e2eEnv {
	t.Helper()

	srv := startDevServer(t)
	dsn := filepath.Join(t.TempDir(), "cache.db")
	services, storages := newClient(t, srv.URL, dsn)

	return &e2eEnv{server: srv, dsn: dsn, services: services, storages: storages}
}

func TestE2E_InventoryWorkflow(t *testing.T) {
	ctx := context.Background()
	env := newE2E(t)
	sessions, inventory, gate := env.services.SessionService, env.services.InventoryService, env.services.AuthGate

	env.services.SessionService.Restore(ctx)
	assert.Equal(t, state.Decision{View: state.ViewLogin, Redirected: true}, gate.Enforce())

	require.NoError(t, sessions.Register(ctx, models.Registration{Username: "a", Email: "a@corp.io", Password: "pw", Role: models.RoleAdmin}))
	assert.True(t, sessions.Valid())
	user, ok := sessions.Snapshot().User()
	require.True(t, ok)
	assert.Equal(t, "a", user.Username)

	inventory.SetView(state.ViewHome)
	assert.False(t, gate.Enforce().Redirected)

	require.NoError(t, inventory.FetchAll(ctx))
	assert.Equal(t, 0, inventory.Snapshot().Len())

	require.NoError(t, inventory.Add(ctx, models.LaptopInput{Name: "ThinkPad", SerialNumber: "SN-1", Model: "T14", Price: 1200, Origin: "US"}))
	require.NoError(t, inventory.FetchAll(ctx))
	items := inventory.Snapshot().Items()
	require.Len(t, items, 1)
	id := items[0].ID

	require.NoError(t, inventory.Distribute(ctx, models.DistributeRequest{
		LaptopID: id, UserName: "Bob", UserEmail: "bob@corp.io", UserPosition: "Engineer",
	}))
	l1, ok := inventory.Snapshot().Find(id)
	require.True(t, ok)
	assert.Equal(t, models.StatusDistributed, l1.Status())
	require.NotNil(t, l1.AssignedTo)
	assert.Equal(t, "Bob", l1.AssignedTo.UserName)

	err := inventory.Distribute(ctx, models.DistributeRequest{
		LaptopID: id, UserName: "Eve", UserEmail: "eve@corp.io", UserPosition: "Engineer",
	})
	assert.ErrorIs(t, err, service.ErrLaptopRequest)
	assert.Equal(t, "Laptop is already distributed", inventory.Snapshot().ErrorMessage())

	require.NoError(t, inventory.Return(ctx, models.ReturnRequest{LaptopID: id, ReturnedReason: "broken"}))
	l1, _ = inventory.Snapshot().Find(id)
	assert.Equal(t, models.StatusReturned, l1.Status())

	inventory.BeginEdit(id)
	assert.False(t, gate.Enforce().Redirected)
	require.NoError(t, inventory.Update(ctx, id, models.LaptopInput{Name: "ThinkPad X", SerialNumber: "SN-1", Model: "X1", Price: 1200, Origin: "US"}))
	l1, _ = inventory.Snapshot().Find(id)
	assert.Equal(t, "ThinkPad X", l1.Name)
	assert.Empty(t, inventory.Snapshot().EditingID())

	require.NoError(t, inventory.Delete(ctx, id))
	require.NoError(t, inventory.FetchAll(ctx))
	_, ok = inventory.Snapshot().Find(id)
	assert.False(t, ok)

	require.NoError(t, sessions.Logout(ctx))
	assert.False(t, sessions.Snapshot().IsAuthenticated())
	require.NoError(t, sessions.Logout(ctx))

	inventory.SetView(state.ViewListAll)
	assert.Equal(t, state.Decision{View: state.ViewLogin, Redirected: true, Notice: state.NoticeLoginRequired}, gate.Enforce())
}

func TestE2E_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	env := newE2E(t)

	require.NoError(t, env.services.SessionService.Register(ctx, models.Registration{Username: "a", Email: "a@corp.io", Password: "pw"}))
	token := env.services.SessionService.Snapshot().Token()
	require.NoError(t, env.storages.Close())

	restarted, _ := newClient(t, env.server.URL, env.dsn)
	restarted.SessionService.Restore(ctx)

	assert.True(t, restarted.SessionService.Valid())
	assert.Equal(t, token, restarted.SessionService.Snapshot().Token())
	user, ok := restarted.SessionService.Snapshot().User()
	require.True(t, ok)
	assert.Equal(t, models.RoleUser, user.Role)

	require.NoError(t, restarted.InventoryService.FetchAll(ctx))
	assert.Equal(t, state.StatusSucceeded, restarted.InventoryService.Snapshot().Status())
}

func TestE2E_LoginRejected(t *testing.T) {
	ctx := context.Background()
	env := newE2E(t)

	err := env.services.SessionService.Login(ctx, models.Credentials{Email: "nobody@corp.io", Password: "pw"})

	assert.ErrorIs(t, err, service.ErrLoginOnServer)
	snap := env.services.SessionService.Snapshot()
	assert.False(t, snap.IsAuthenticated())
	assert.Equal(t, "Invalid email or password", snap.ErrorMessage())
}

func TestE2E_UnauthorizedAfterLogout(t *testing.T) {
	ctx := context.Background()
	env := newE2E(t)

	require.NoError(t, env.services.SessionService.Register(ctx, models.Registration{Username: "a", Email: "a@corp.io", Password: "pw"}))
	require.NoError(t, env.services.SessionService.Logout(ctx))

	err := env.services.InventoryService.FetchAll(ctx)

	assert.ErrorIs(t, err, service.ErrLaptopRequest)
	assert.Equal(t, service.MsgSessionExpired, env.services.InventoryService.Snapshot().ErrorMessage())
}
