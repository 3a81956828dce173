package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

// Services groups the remote directory server's services.
type Services struct {
	DirectoryService  DirectoryService
	DeviceAuthService DeviceAuthService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := NewPasswordHasher(cfg.App.PasswordHashScheme, cfg.App.PasswordHashKey)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		DirectoryService:  NewDirectoryService(storages.UserRepository, hasher, utils.NewUUIDGenerator(), logger),
		DeviceAuthService: NewDeviceAuthService(cfg.App, logger),
		AppInfoService:    appInfo,
	}, nil
}
