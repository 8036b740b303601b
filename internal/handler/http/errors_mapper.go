package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-hub/internal/adapter"
	"github.com/MKhiriev/go-sync-hub/internal/instance"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/service"
	"github.com/MKhiriev/go-sync-hub/internal/store"
	"github.com/MKhiriev/go-sync-hub/internal/utils"
	"github.com/MKhiriev/go-sync-hub/internal/validators"
	"github.com/MKhiriev/go-sync-hub/models"
)

var errorStatusMap = map[error]int{
	ErrMalformedJSON:                   http.StatusBadRequest,
	ErrMissingUsername:                 http.StatusBadRequest,
	validators.ErrValidation:           http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrRegistrationClosed:      http.StatusForbidden,
	service.ErrNotAdmin:                http.StatusForbidden,
	service.ErrSelfRemoval:             http.StatusConflict,
	adapter.ErrInvalidIndex:            http.StatusBadRequest,

	store.ErrUserAlreadyExists:  http.StatusConflict,
	store.ErrCapacityExceeded:   http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrCorruptRegistry:    http.StatusInternalServerError,
	store.ErrPersistingRegistry: http.StatusInternalServerError,

	service.ErrInstanceTeardown:      http.StatusInternalServerError,
	instance.ErrConfigReconciliation: http.StatusInternalServerError,
}

// statusFromError returns the status for err together with the sentinel it
// matched, or nil when nothing matched.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError answers with {"error": ...}. Server-side failures never leak
// their details to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, target := statusFromError(err)

	message := http.StatusText(status)
	switch {
	case status >= http.StatusInternalServerError:
		logger.FromRequest(r).Error().Err(err).Int("status", status).Msg("request failed")
	case errors.Is(err, validators.ErrValidation):
		message = err.Error()
	case target != nil:
		message = target.Error()
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
