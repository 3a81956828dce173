package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/app"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

// auth admits requests carrying a valid device token and stores the device
// id under [utils.DeviceIDCtxKey]. Everything else gets 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.DeviceAuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			}
			return
		}

		ctx = context.WithValue(ctx, utils.DeviceIDCtxKey, token.DeviceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
