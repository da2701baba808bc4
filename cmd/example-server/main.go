package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-square/internal/config"
	"github.com/MKhiriev/go-square/internal/handler"
	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/server"
	"github.com/MKhiriev/go-square/internal/service"
	"github.com/MKhiriev/go-square/internal/store"
	"github.com/MKhiriev/go-square/internal/workers"
	"github.com/MKhiriev/go-square/models"
	"github.com/MKhiriev/go-square/square"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	log := logger.NewLogger("go-square-example-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	opts, err := cfg.Square.ClientOptions()
	if err != nil {
		log.Fatal().Err(err).Msg("error configuring square client")
	}
	client := square.NewClient(cfg.Square.AccessToken, append(opts, square.WithLogger(log.Logger))...)
	log.Info().Str("base_url", client.BaseURL()).Msg("square client created")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to ledger database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating ledger database")
	}

	services, err := service.NewServices(client, store.NewRepositories(db, log), *cfg, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	jobs := workers.NewWorkers(services, cfg.Workers, log)
	jobsDone := make(chan struct{})
	go func() {
		jobs.Run(ctx)
		close(jobsDone)
	}()

	srv.RunServer()

	cancel()
	<-jobsDone
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
