package main

import (
	"context"
	"fmt"

	"github.com/fiumana/guestdesk/internal/adapter"
	"github.com/fiumana/guestdesk/internal/config"
	"github.com/fiumana/guestdesk/internal/crypto"
	httpHandler "github.com/fiumana/guestdesk/internal/handler/http"
	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/internal/server"
	"github.com/fiumana/guestdesk/internal/service"
	"github.com/fiumana/guestdesk/internal/store"
	"github.com/fiumana/guestdesk/internal/workers"
	"github.com/fiumana/guestdesk/migrations"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("guestdesk-server")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on process environment")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)
	vault := crypto.NewVault(cfg.Crypto.EncryptionKey, cfg.Crypto.EncryptionSalt)
	portalClient := adapter.NewSOAPClient(cfg.Alloggiati, log)
	services := service.NewServices(repos, vault, portalClient, *cfg, log)

	handler := httpHandler.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewPurgeWorker(services.CheckInService, cfg.Workers, log),
	)
	background.Start(context.Background())
	defer background.Stop()

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
