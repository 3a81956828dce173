package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/app"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidRole, errorResponse{http.StatusBadRequest, app.MsgInvalidRole}},
	{service.ErrDuplicateEmail, errorResponse{http.StatusConflict, app.MsgEmailAlreadyExists}},
	{store.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgEmailAlreadyExists}},
	{service.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrInvalidToken, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
}

func lookupError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return lookupError(err).status
}

func messageFromError(err error) string {
	return lookupError(err).message
}
