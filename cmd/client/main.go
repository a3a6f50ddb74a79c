package main

import (
	"context"

	"github.com/MKhiriev/client-keeper/internal/client"
	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("client-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// the TUI shows the build info on the "v" hotkey
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run()
	if err = app.Close(); err != nil {
		log.Err(err).Msg("close client app")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}
