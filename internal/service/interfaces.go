package service

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService owns the lifecycle of directory users in the local store.
// It is the only write path to the store.
type UserService interface {
	// Create hashes the password and persists a new active, unsynced user.
	// Returns [ErrDuplicateEmail] if the email is taken (case-insensitive)
	// and [ErrInvalidRole] for a role outside the fixed set.
	Create(ctx context.Context, in models.NewUser) (models.User, error)

	// Update applies the non-nil fields of patch. Every successful update
	// refreshes UpdatedAt and resets Synced, even for a no-op patch.
	Update(ctx context.Context, id string, patch models.UserPatch) error

	// Delete removes the user. Deleting an unknown id succeeds.
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)

	// Subscribe registers fn for change events delivered after each
	// committed write. The returned func removes the subscription.
	Subscribe(fn func(models.UserEvent)) (unsubscribe func())
}

// SyncWriter is the bookkeeping write path used by the sync reconciler.
type SyncWriter interface {
	// ApplyRemote upserts a remote record. A local user is matched by
	// remote id, then by email. created reports whether a new local user
	// was inserted.
	ApplyRemote(ctx context.Context, remote models.RemoteUser) (created bool, err error)

	// MarkSynced records a successful exchange with the remote directory.
	MarkSynced(ctx context.Context, id, remoteID string) error
}

// Authenticator resolves credentials to a user.
type Authenticator interface {
	// Authenticate returns (nil, nil) when the email is unknown or the
	// password does not verify; the two cases are indistinguishable.
	// A deactivated account with a correct password yields [ErrInactiveUser].
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// SyncReconciler pulls the remote directory into the local store.
type SyncReconciler interface {
	// Pull fetches every remote user once and applies it locally. Transport
	// failures are wrapped in [ErrSyncUnavailable].
	Pull(ctx context.Context) (models.PullResult, error)
	MarkSynced(ctx context.Context, id, remoteID string) error
}

// BootstrapCoordinator makes the first-run decision between login and
// first-admin creation.
type BootstrapCoordinator interface {
	// Run walks checking → syncing → ready. Pull failures are absorbed into
	// the result; only local store failures are returned as errors.
	Run(ctx context.Context) (models.BootstrapResult, error)
	State() models.BootstrapState

	// CreateFirstAdmin creates the initial user with role admin regardless
	// of any other request. Returns [ErrAlreadyBootstrapped] if any user
	// exists.
	CreateFirstAdmin(ctx context.Context, nome, email, password string, fazendaID *string) (models.User, error)
}

// DirectoryService is the remote directory server's view of its users.
type DirectoryService interface {
	ListUsers(ctx context.Context) ([]models.RemoteUser, error)
	ProvisionUser(ctx context.Context, req models.ProvisionUserRequest) (models.RemoteUser, error)
}

// DeviceAuthService issues and validates device tokens for the pull API.
type DeviceAuthService interface {
	IssueToken(ctx context.Context, deviceID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
