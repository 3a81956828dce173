package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

const defaultTokenDuration = 30 * 24 * time.Hour

type deviceAuthService struct {
	signKey       string
	issuer        string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewDeviceAuthService constructs a [DeviceAuthService] from the app
// token settings. A non-positive duration selects 30 days.
func NewDeviceAuthService(cfg config.App, logger *logger.Logger) DeviceAuthService {
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = defaultTokenDuration
	}

	return &deviceAuthService{
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: duration,
		logger:        logger,
	}
}

func (d *deviceAuthService) IssueToken(ctx context.Context, deviceID string) (models.Token, error) {
	if deviceID == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(d.issuer, deviceID, d.tokenDuration, d.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "deviceAuthService.IssueToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

func (d *deviceAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, d.signKey, d.issuer)
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, ErrTokenIsExpired
	default:
		logger.FromContext(ctx).Debug().Err(err).Str("func", "deviceAuthService.ParseToken").Msg("invalid token")
		return models.Token{}, ErrInvalidToken
	}
}
