package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-apollo-env/internal/adapter"
	"github.com/MKhiriev/go-apollo-env/internal/client"
	"github.com/MKhiriev/go-apollo-env/internal/config"
	"github.com/MKhiriev/go-apollo-env/internal/logger"
	"github.com/MKhiriev/go-apollo-env/internal/service"
	"github.com/MKhiriev/go-apollo-env/internal/store"
	"github.com/MKhiriev/go-apollo-env/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewConsoleLogger("apollo-env", os.Stderr)
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.EnvFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	configServerAdapter := adapter.NewHTTPConfigServerAdapter(cfg.Adapter, log)
	services := service.NewServices(configServerAdapter, storages, log)

	app, err := client.NewApp(services, cfg.Request(), os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	ctx, stop := signal.NotifyContext(log.WithContext(context.Background()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("apollo-env run error")
	}
}

// printBuildInfo writes to stderr; stdout carries the KEY=VALUE output.
func printBuildInfo(info models.AppBuildInfo) {
	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.BuildCommit())
}
