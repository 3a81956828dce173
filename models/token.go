package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed device token used to authorise pulls from the
// remote directory.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// DeviceID is the "sub" claim: the device allowed to pull.
	DeviceID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
