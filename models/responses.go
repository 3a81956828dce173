package models

// PullResponse is the body returned by the remote directory for a pull.
type PullResponse struct {
	// Users is every user record the remote directory holds.
	Users []RemoteUser `json:"users"`

	// Length is len(Users). The client rejects a body where the two
	// disagree as malformed.
	Length int `json:"length"`
}
