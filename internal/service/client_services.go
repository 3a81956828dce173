package service

import (
	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

// ClientServices is the complete surface offered to the client UI.
type ClientServices struct {
	Hasher        PasswordHasher
	Users         UserService
	Authenticator Authenticator
	Sync          SyncReconciler
	Bootstrap     BootstrapCoordinator
}

// NewClientServices wires the client services on the local storages. A nil
// remote runs the device offline.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteDirectory, cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	hasher, err := NewPasswordHasher(cfg.App.PasswordHashScheme, cfg.App.PasswordHashKey)
	if err != nil {
		return nil, err
	}

	users := newUserService(storages.UserRepository, hasher, utils.NewUUIDGenerator(), logger)
	reconciler := NewSyncReconciler(remote, users, logger)

	return &ClientServices{
		Hasher:        hasher,
		Users:         users,
		Authenticator: NewAuthenticator(users, hasher, logger),
		Sync:          reconciler,
		Bootstrap:     NewBootstrapCoordinator(users, reconciler, cfg.Workers.PullTimeout, logger),
	}, nil
}
