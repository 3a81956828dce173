package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-resty/resty/v2"
)

const usersPath = "/api/users/"

type httpRemoteDirectory struct {
	client *utils.HTTPClient
	signer *utils.Signer
	token  string

	logger *logger.Logger
}

// NewHTTPRemoteDirectory constructs the HTTP/REST implementation of
// [RemoteDirectory]. Every request carries adapterCfg.Token as a bearer
// token. When appCfg.HashKey is set, responses must carry a matching
// HashSHA256 header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or not a valid URL.
func NewHTTPRemoteDirectory(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteDirectory, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	var signer *utils.Signer
	if appCfg.HashKey != "" {
		signer = utils.NewSigner(appCfg.HashKey)
	}

	return &httpRemoteDirectory{
		client: client,
		signer: signer,
		token:  strings.TrimSpace(adapterCfg.Token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PullUsers implements [RemoteDirectory] with GET /api/users/.
func (h *httpRemoteDirectory) PullUsers(ctx context.Context) ([]models.RemoteUser, error) {
	log := logger.FromContext(ctx)

	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "application/json").
		Get(usersPath)
	if err != nil {
		log.Err(err).Str("func", "httpRemoteDirectory.PullUsers").Msg("pull request failed")
		return nil, fmt.Errorf("pull users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "httpRemoteDirectory.PullUsers").
			Int("status", resp.StatusCode()).
			Msg("remote directory rejected pull")
		return nil, err
	}

	body := resp.Body()
	if h.signer != nil && !h.signer.Verify(body, resp.Header().Get(utils.HashHeader)) {
		log.Error().Str("func", "httpRemoteDirectory.PullUsers").Msg("response hash mismatch")
		return nil, ErrResponseIntegrity
	}

	var pulled models.PullResponse
	if err = json.Unmarshal(body, &pulled); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if pulled.Length != len(pulled.Users) {
		return nil, fmt.Errorf("%w: declared %d users, got %d", ErrMalformedResponse, pulled.Length, len(pulled.Users))
	}

	log.Debug().
		Str("func", "httpRemoteDirectory.PullUsers").
		Int("users", len(pulled.Users)).
		Msg("pulled remote users")

	return pulled.Users, nil
}

func (h *httpRemoteDirectory) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
