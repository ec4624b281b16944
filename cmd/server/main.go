package main

import (
	"context"
	"fmt"

	"github.com/mkhalitov/shoplist/internal/config"
	handler "github.com/mkhalitov/shoplist/internal/handler/http"
	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/internal/server"
	"github.com/mkhalitov/shoplist/internal/service"
	"github.com/mkhalitov/shoplist/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("shoplist-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.UsingDefaultSignKey() {
		log.Warn().Msg("running with the built-in token signing key; set APP_TOKEN_SIGN_KEY in any real deployment")
	}
	if cfg.App.Version == "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to storage")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing storage")
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating storage schema")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg.App, log)
	handlers := handler.NewHandler(services, cfg.App.Version, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
