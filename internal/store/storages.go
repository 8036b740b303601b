package store

import (
	"path/filepath"

	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
)

// RegistryFileName is the registry document inside the data directory.
const RegistryFileName = "users.json"

type Storages struct {
	UserRepository UserRepository
}

func NewStorages(cfg *config.StructuredConfig, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	path := filepath.Join(cfg.Storage.DataDir, RegistryFileName)
	return &Storages{
		UserRepository: NewRegistryFile(path, cfg.Instances.MaxUsers, logger),
	}
}
