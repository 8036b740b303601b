package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/service"
	"github.com/MKhiriev/go-sync-hub/internal/store"
	"github.com/MKhiriev/go-sync-hub/internal/utils"
)

// withSession rejects requests without a valid session cookie and stores
// the parsed session in the request context.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := h.services.SessionService.ParseSession(r.Context(), utils.SessionToken(r))
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("request without valid session")
			writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), session)))
	})
}

// withAdmin must run after withSession. Admin rights are read from the
// registry on every request; the token only proves identity.
func (h *Handler) withAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		user, err := h.services.UserRegistry.GetUser(r.Context(), session.Username)
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		if !user.IsAdmin {
			log.Warn().Str("username", user.Username).Str("uri", r.RequestURI).Msg("admin endpoint denied")
			writeError(w, r, service.ErrNotAdmin)
			return
		}

		next.ServeHTTP(w, r)
	})
}
