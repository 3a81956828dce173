// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Password hash schemes accepted by [NewPasswordHasher].
const (
	HashSchemeSHA256   = "sha256"
	HashSchemeArgon2id = "argon2id"
)

const argon2idPrefix = "$argon2id$"

// PasswordHasher turns plaintext credentials into stored digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext produces digest. The comparison is
	// constant-time.
	Verify(plaintext, digest string) bool
}

// NewPasswordHasher returns the hasher for scheme keyed with the
// application-wide secret. An empty scheme selects [HashSchemeSHA256].
func NewPasswordHasher(scheme, secret string) (PasswordHasher, error) {
	legacy := &sha256Hasher{secret: secret}

	switch scheme {
	case "", HashSchemeSHA256:
		return legacy, nil
	case HashSchemeArgon2id:
		return &argon2idHasher{
			legacy:  legacy,
			secret:  secret,
			time:    1,
			memory:  64 * 1024, // 64 MiB
			threads: 4,
			keyLen:  32,
			saltLen: 16,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHashScheme, scheme)
}

// sha256Hasher is the deterministic digest hex(SHA-256(secret || plaintext)).
// It carries no per-user salt so that digests stay compatible with records
// already held by the remote directory.
type sha256Hasher struct {
	secret string
}

func (h *sha256Hasher) Hash(plaintext string) (string, error) {
	return h.sum(plaintext), nil
}

func (h *sha256Hasher) Verify(plaintext, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(h.sum(plaintext)), []byte(digest)) == 1
}

func (h *sha256Hasher) sum(plaintext string) string {
	sum := sha256.Sum256([]byte(h.secret + plaintext))
	return hex.EncodeToString(sum[:])
}

const (
	maxArgon2Memory = 1 << 20 // KiB, 1 GiB
	maxArgon2KeyLen = 1024
)

// argon2idHasher produces salted PHC strings
// ($argon2id$v=19$m=...,t=...,p=...$salt$key). Digests without the argon2id
// prefix are verified with the legacy scheme.
type argon2idHasher struct {
	legacy *sha256Hasher
	secret string

	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

func (h *argon2idHasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(h.secret+plaintext), salt, h.time, h.memory, h.threads, h.keyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2idHasher) Verify(plaintext, digest string) bool {
	if !strings.HasPrefix(digest, argon2idPrefix) {
		return h.legacy.Verify(plaintext, digest)
	}

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(digest, "$")
	if len(parts) != 6 {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var (
		memory, time uint32
		threads      uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	// Digests arrive from remote pulls; argon2 panics on zero rounds or
	// lanes and allocates m KiB.
	if time == 0 || threads == 0 || memory == 0 || memory > maxArgon2Memory {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 || len(want) > maxArgon2KeyLen {
		return false
	}

	got := argon2.IDKey([]byte(h.secret+plaintext), salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
