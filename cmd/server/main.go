package main

import (
	"context"
	"fmt"

	"github.com/medichat/go-medichat/internal/config"
	myHTTP "github.com/medichat/go-medichat/internal/handler/http"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/metrics"
	"github.com/medichat/go-medichat/internal/server"
	"github.com/medichat/go-medichat/internal/service"
	"github.com/medichat/go-medichat/internal/store"
	"github.com/medichat/go-medichat/internal/workers"
	"github.com/medichat/go-medichat/migrations"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("medichat-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages, err := store.NewStorages(ctx, db, cfg.Storage.RedisURL, cfg.Workers.SessionTTL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	services := service.NewServices(*storages, *cfg, m, log)

	if err = services.KnowledgeService.LoadOrRebuild(ctx); err != nil {
		log.Fatal().Err(err).Msg("error preparing the knowledge index")
	}

	handler := myHTTP.NewHandler(services, m, *cfg, log)

	jobs := workers.NewWorkers(cfg.Workers, services.KnowledgeService, storages.SessionStore, log)

	srv, err := server.NewServer(handler.Init(), jobs, cfg.Server, log)
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
