package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/utils"
	"github.com/MKhiriev/go-sync-hub/models"
)

const (
	healthPath    = "/rest/noauth/health"
	healthyStatus = "OK"
)

type httpHealthChecker struct {
	client *utils.HTTPClient

	// host is where every per-user backend listens.
	host string

	logger *logger.Logger
}

// NewHTTPHealthChecker constructs an HTTP implementation of
// [HealthChecker] that reaches the backends on host and gives up on a check
// after timeout.
func NewHTTPHealthChecker(host string, timeout time.Duration, logger *logger.Logger) HealthChecker {
	return &httpHealthChecker{
		client: utils.NewHTTPClient(timeout),
		host:   host,
		logger: logger,
	}
}

// SyncEngineHealth implements [HealthChecker]. It GETs the health endpoint
// on port models.BaseWebPort+index.
func (h *httpHealthChecker) SyncEngineHealth(ctx context.Context, username string, index int) (models.InstanceStatus, error) {
	if index < 0 {
		return models.InstanceStatus{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	ports := models.PortsForIndex(index)
	status := models.InstanceStatus{
		Username: username,
		Index:    index,
		WebPort:  ports.Web,
	}

	err := h.check(ctx, ports.Web)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("username", username).
			Int("port", ports.Web).
			Msg("sync-engine health check failed")
		status.Status = err.Error()
		return status, nil
	}

	status.Healthy = true
	status.Status = healthyStatus
	return status, nil
}

func (h *httpHealthChecker) check(ctx context.Context, port int) error {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("http://" + net.JoinHostPort(h.host, strconv.Itoa(port)) + healthPath)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	if err = statusError(resp); err != nil {
		return err
	}
	if !strings.EqualFold(health.Status, healthyStatus) {
		return fmt.Errorf("%w: %q", ErrUnhealthy, health.Status)
	}
	return nil
}
