package adapter

import "errors"

// Status-mapped transport errors.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrDeviceTokenExpired narrows ErrUnauthorized: the device token was
	// valid but has expired and must be reissued with tokengen.
	ErrDeviceTokenExpired = errors.New("device token expired")
)

// Response validation errors.
var (
	// ErrResponseIntegrity is returned when the HashSHA256 header does not
	// match the response body.
	ErrResponseIntegrity = errors.New("response integrity check failed")

	// ErrMalformedResponse is returned when the body cannot be decoded or its
	// declared length does not match the number of users.
	ErrMalformedResponse = errors.New("malformed response")
)
