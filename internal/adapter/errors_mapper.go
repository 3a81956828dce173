package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/app"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrServiceUnavailable,
}

// mapHTTPError turns a non-2xx response of the remote directory into one of
// the package sentinels. A 401 carrying the server's expiry message also
// matches ErrDeviceTokenExpired.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if status == http.StatusUnauthorized && body == app.MsgTokenIsExpired {
		return fmt.Errorf("%w: %w", ErrUnauthorized, ErrDeviceTokenExpired)
	}
	if body == "" {
		body = http.StatusText(status)
	}

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	return fmt.Errorf("remote directory answered %d: %s", status, body)
}
