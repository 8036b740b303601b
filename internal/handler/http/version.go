package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-hub/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, h.buildInfo.Response(), http.StatusOK)
}
