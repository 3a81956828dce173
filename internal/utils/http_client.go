package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-user-directory-client"

// HTTPClient embeds *resty.Client so adapters get the full resty API and
// room for app-specific helpers.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Redirects are refused so the bearer token never leaves the configured
// host.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRedirectPolicy(resty.NoRedirectPolicy())

	return &HTTPClient{Client: client}
}
