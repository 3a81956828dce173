// Package utils provides helpers shared by the directory client and server:
// context keys, HMAC response signing, device JWTs, JSON responses, the
// resty HTTP client wrapper and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// DeviceIDCtxKey stores the authenticated device id in a request context.
var DeviceIDCtxKey = contextKey("deviceID")

// GetDeviceIDFromContext returns the device id stored under
// [DeviceIDCtxKey]. ok is false when the value is missing or not a string.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok
}
