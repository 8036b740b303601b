package service

import (
	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/store"
)

type Services struct {
	UserRegistry   UserRegistry
	SessionService SessionService
}

func NewServices(storages *store.Storages, instances InstanceManager, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		UserRegistry:   NewUserRegistry(storages.UserRepository, instances, cfg, logger),
		SessionService: NewSessionService(cfg.App, logger),
	}
}
