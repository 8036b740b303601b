package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-hub/internal/utils"
)

// instanceStatus checks the health of the caller's own sync-engine instance.
func (h *Handler) instanceStatus(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())

	status, err := h.checker.SyncEngineHealth(r.Context(), session.Username, session.Index)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}
