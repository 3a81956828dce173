package models

// UserEventType names the kind of change committed to the user directory.
type UserEventType string

const (
	UserCreated UserEventType = "created"
	UserUpdated UserEventType = "updated"
	UserDeleted UserEventType = "deleted"
	UserPulled  UserEventType = "pulled"
	UserSynced  UserEventType = "synced"
)

// UserEvent is delivered to subscribers after a write commits.
// For UserDeleted only UserID is set.
type UserEvent struct {
	Type   UserEventType
	UserID string
	User   *User
}
