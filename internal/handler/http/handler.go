package http

import (
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

type Handler struct {
	services *service.Services
	// signer is nil when responses are not signed.
	signer *utils.Signer

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A non-empty hashKey enables the
// HashSHA256 header on pull responses.
func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	if hashKey != "" {
		h.signer = utils.NewSigner(hashKey)
	}

	logger.Info().Bool("signing", h.signer != nil).Msg("http handler created")
	return h
}
