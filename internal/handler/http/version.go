package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/logger"
)

// getServerVersion answers GET /api/version/ with the plain-text build
// version of the directory server.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getServerVersion").Msg("writing version")
	}
}
