// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/service"
	"github.com/MKhiriev/go-sync-hub/internal/utils"
	"github.com/MKhiriev/go-sync-hub/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserRegistry.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	_, _ = utils.WriteJSON(w, models.UsersResponse{Users: public}, http.StatusOK)
}

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AddUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserRegistry.AddUser(ctx, req.Username, req.Password, req.IsAdmin)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("adding user failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", user.Username).Int("index", user.Index).Bool("is_admin", user.IsAdmin).Msg("user added")
	_, _ = utils.WriteJSON(w, user.Public(), http.StatusCreated)
}

func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, err := h.usernameParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if session, _ := utils.GetSessionFromContext(ctx); session.Username == username {
		writeError(w, r, service.ErrSelfRemoval)
		return
	}

	if err = h.services.UserRegistry.RemoveUser(ctx, username); err != nil {
		log.Err(err).Str("username", username).Msg("removing user failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", username).Msg("user removed")
	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) promoteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, err := h.usernameParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserRegistry.PromoteToAdmin(ctx, username); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", username).Msg("user promoted to admin")
	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

// usernameParam reads and validates the ?username= query parameter.
func (h *Handler) usernameParam(r *http.Request) (string, error) {
	username := r.URL.Query().Get("username")
	if username == "" {
		return "", ErrMissingUsername
	}
	if err := h.validator.Validate(r.Context(), username); err != nil {
		return "", err
	}
	return username, nil
}
