package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/crypto"
	"github.com/MKhiriev/client-keeper/internal/handler"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/notify"
	"github.com/MKhiriev/client-keeper/internal/server"
	"github.com/MKhiriev/client-keeper/internal/service"
	"github.com/MKhiriev/client-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("client-keeper-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	notifier, err := notify.New(cfg.Broker, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notifier")
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			log.Err(err).Msg("error closing notifier")
		}
	}()

	services := service.NewServices(storages, notifier, crypto.NewPasswordHasher(), cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
