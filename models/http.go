package models

// ProvisionUserRequest is the body of a user provisioning call on the
// remote directory. Password is plaintext over the wire and is hashed by
// the server with the shared password scheme.
type ProvisionUserRequest struct {
	Nome      string  `json:"nome"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Role      Role    `json:"role"`
	FazendaID *string `json:"fazendaId,omitempty"`
}
