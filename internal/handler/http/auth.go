package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/store"
	"github.com/MKhiriev/go-sync-hub/internal/utils"
	"github.com/MKhiriev/go-sync-hub/models"
)

func (h *Handler) registrationOpen(w http.ResponseWriter, r *http.Request) {
	open, err := h.services.UserRegistry.IsRegistrationOpen(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.RegistrationOpenResponse{Open: open}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserRegistry.Register(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("registration failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", user.Username).Int("index", user.Index).Msg("first user registered")
	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserRegistry.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("login rejected")
		writeError(w, r, err)
		return
	}

	token, err := h.services.SessionService.CreateSession(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, utils.SessionCookie(token.SignedString, token.MaxAge, h.secureCookie))
	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, utils.ClearSessionCookie(h.secureCookie))
	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

// session reports the caller's session and slides its expiry forward. The
// user is looked up again so that removed users lose their session and
// admin status always reflects the registry.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := h.services.SessionService.ParseSession(ctx, utils.SessionToken(r))
	if err != nil {
		_, _ = utils.WriteJSON(w, models.SessionResponse{LoggedIn: false}, http.StatusOK)
		return
	}

	user, err := h.services.UserRegistry.GetUser(ctx, session.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		http.SetCookie(w, utils.ClearSessionCookie(h.secureCookie))
		_, _ = utils.WriteJSON(w, models.SessionResponse{LoggedIn: false}, http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.SessionService.RefreshSession(ctx, models.Session{
		Username: user.Username,
		Index:    user.Index,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, utils.SessionCookie(token.SignedString, token.MaxAge, h.secureCookie))
	_, _ = utils.WriteJSON(w, models.SessionResponse{
		LoggedIn: true,
		Username: user.Username,
		Index:    user.Index,
		IsAdmin:  user.IsAdmin,
	}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, _ := utils.GetSessionFromContext(ctx)

	var req models.UpdatePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.services.UserRegistry.Authenticate(ctx, session.Username, req.OldPassword); err != nil {
		log.Err(err).Str("username", session.Username).Msg("current password check failed")
		writeError(w, r, err)
		return
	}

	if err := h.services.UserRegistry.UpdatePassword(ctx, session.Username, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", session.Username).Msg("password updated")
	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
