package http

import (
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/adapter"
	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/proxy"
	"github.com/MKhiriev/go-sync-hub/internal/service"
	"github.com/MKhiriev/go-sync-hub/internal/validators"
	"github.com/MKhiriev/go-sync-hub/models"
)

type Handler struct {
	services  *service.Services
	gateways  []*proxy.Gateway
	checker   adapter.HealthChecker
	validator validators.Validator
	buildInfo models.AppBuildInfo

	secureCookie   bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	gateways []*proxy.Gateway,
	checker adapter.HealthChecker,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Handler {
	logger.Info().Int("gateways", len(gateways)).Msg("http handler created")
	return &Handler{
		services:       services,
		gateways:       gateways,
		checker:        checker,
		validator:      validators.NewRequestValidator(),
		buildInfo:      buildInfo,
		secureCookie:   cfg.Gateway.SecureCookie,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
