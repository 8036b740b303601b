package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-sync-hub/internal/compose"
	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/crypto"
	"github.com/MKhiriev/go-sync-hub/internal/handler"
	"github.com/MKhiriev/go-sync-hub/internal/instance"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/server"
	"github.com/MKhiriev/go-sync-hub/internal/service"
	"github.com/MKhiriev/go-sync-hub/internal/store"
	"github.com/MKhiriev/go-sync-hub/internal/workers"
	"github.com/MKhiriev/go-sync-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-sync-hub")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("data_dir", cfg.Storage.DataDir).
		Str("address", cfg.Server.HTTPAddress).
		Int("max_users", cfg.Instances.MaxUsers).
		Bool("containers_disabled", cfg.Instances.DisableContainers).
		Bool("file_browser_disabled", cfg.Instances.DisableFileBrowser).
		Msg("received configs")

	executor := compose.NewNopExecutor(log)
	if !cfg.Instances.DisableContainers {
		executor, err = compose.NewExecutor(cfg.Instances.ComposeCommand, cfg.Instances.CommandTimeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating compose executor")
		}
	}

	instances := instance.NewManager(cfg.Instances, cfg.Storage, executor, crypto.NewConfigCodec(), log)
	storages := store.NewStorages(cfg, log)
	services := service.NewServices(storages, instances, cfg, log)

	// fail fast on an unreadable registry
	if err = services.UserRegistry.Reload(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("error loading user registry")
	}

	handlers, err := handler.NewHandlers(services, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log,
		server.Hook{Name: "wait-workers", Run: bgWorkers.Wait},
		server.WaitHook("wait-pending-starts", services.UserRegistry.Wait),
		server.Hook{Name: "stop-instances", Run: services.UserRegistry.StopAllInstances},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers.Run(context.Background())
	srv.RunServer()
}
