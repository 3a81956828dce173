package store

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalUserRepository is the low-level SQLite repository of the device's
// user directory. Emails are matched case-insensitively.
type LocalUserRepository interface {
	Insert(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByRemoteID(ctx context.Context, remoteID string) (models.User, error)
	// Update overwrites every mutable column of the record with user.ID.
	Update(ctx context.Context, user models.User) error
	// Delete removes the record. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
}

// RemoteUserRepository is the PostgreSQL repository behind the remote
// directory server.
type RemoteUserRepository interface {
	ListUsers(ctx context.Context) ([]models.RemoteUser, error)
	CreateUser(ctx context.Context, user models.RemoteUser) (models.RemoteUser, error)
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
