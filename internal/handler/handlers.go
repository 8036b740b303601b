package handler

import (
	"github.com/MKhiriev/go-sync-hub/internal/adapter"
	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/handler/http"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/proxy"
	"github.com/MKhiriev/go-sync-hub/internal/service"
	"github.com/MKhiriev/go-sync-hub/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler together with its gateways and the
// instance health checker. The file-browser gateway is left out when the
// file browser is disabled.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errMissingHTTPAddress
	}

	gateways := []*proxy.Gateway{
		proxy.NewGateway(proxy.SyncEngineBackend(), services.SessionService, cfg.Gateway, logger),
	}
	if !cfg.Instances.DisableFileBrowser {
		gateways = append(gateways, proxy.NewGateway(proxy.FileBrowserBackend(), services.SessionService, cfg.Gateway, logger))
	}

	checker := adapter.NewHTTPHealthChecker(cfg.Gateway.UpstreamHost, cfg.Server.RequestTimeout, logger)

	return &Handlers{
		HTTP: http.NewHandler(services, gateways, checker, cfg, buildInfo, logger),
	}, nil
}
