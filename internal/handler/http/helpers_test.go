package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/mock"
	"github.com/MKhiriev/go-user-directory/internal/service"
)

const (
	testHashKey = "response-key"
	testVersion = "1.4.0"
)

var testAppConfig = config.App{
	TokenSignKey:  "sign-key",
	TokenIssuer:   "directory-server",
	TokenDuration: time.Hour,
	Version:       testVersion,
	HashKey:       testHashKey,
}

type testEnv struct {
	handler   *Handler
	directory *mock.MockDirectoryService
	token     string
}

func newTestEnv(t *testing.T, hashKey string) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryService(ctrl)
	deviceAuth := service.NewDeviceAuthService(testAppConfig, logger.Nop())
	appInfo, err := service.NewAppInfoService(testAppConfig, logger.Nop())
	require.NoError(t, err)

	token, err := deviceAuth.IssueToken(context.Background(), "tablet-01")
	require.NoError(t, err)

	services := &service.Services{
		DirectoryService:  directory,
		DeviceAuthService: deviceAuth,
		AppInfoService:    appInfo,
	}

	return &testEnv{
		handler:   NewHandler(services, hashKey, logger.Nop()),
		directory: directory,
		token:     token.String(),
	}
}
