// Command tokengen issues a device token for pulling from the remote
// directory. It reads the same APP_TOKEN_* settings and flags as the server
// and the device id from DEVICE_ID.
//
//	DEVICE_ID=tablet-01 tokengen -token-sign-key <key> -token-issuer <iss>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
)

func main() {
	log := logger.NewLogger("directory-tokengen")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		log.Fatal().Err(config.ErrInvalidAppConfigs).Msg("token sign key and issuer are required")
	}

	deviceID := os.Getenv("DEVICE_ID")
	token, err := service.NewDeviceAuthService(cfg.App, log).IssueToken(context.Background(), deviceID)
	if err != nil {
		log.Fatal().Err(err).Str("device_id", deviceID).Msg("error issuing token")
	}

	fmt.Println(token.String())
}
