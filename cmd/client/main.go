// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-equip-keeper/internal/adapter"
	"github.com/MKhiriev/go-equip-keeper/internal/client"
	"github.com/MKhiriev/go-equip-keeper/internal/config"
	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/service"
	"github.com/MKhiriev/go-equip-keeper/internal/store"
	"github.com/MKhiriev/go-equip-keeper/internal/tui"
	"github.com/MKhiriev/go-equip-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "equip-keeper-client"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		// the UI owns the terminal only after this point
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger(role, cfg.Log.File)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting client")

	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(storages, serverAdapter, log)

	ui, err := tui.New(services, cfg.UI, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
