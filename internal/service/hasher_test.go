// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastArgon2idHasher() *argon2idHasher {
	return &argon2idHasher{
		legacy:  &sha256Hasher{secret: testSecret},
		secret:  testSecret,
		time:    1,
		memory:  1024,
		threads: 1,
		keyLen:  32,
		saltLen: 16,
	}
}

func TestNewPasswordHasher(t *testing.T) {
	for _, scheme := range []string{"", HashSchemeSHA256, HashSchemeArgon2id} {
		h, err := NewPasswordHasher(scheme, testSecret)
		require.NoError(t, err, scheme)
		assert.NotNil(t, h)
	}

	_, err := NewPasswordHasher("md5", testSecret)
	assert.ErrorIs(t, err, ErrUnknownHashScheme)
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := &sha256Hasher{secret: testSecret}

	a, err := h.Hash("secret1")
	require.NoError(t, err)
	b, err := h.Hash("secret1")
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(testSecret + "secret1"))
	assert.Equal(t, hex.EncodeToString(sum[:]), a)
	assert.Equal(t, a, b)
	assert.NotContains(t, a, "secret1")
}

func TestSHA256Hasher_Verify(t *testing.T) {
	h := &sha256Hasher{secret: testSecret}
	passwords := []string{"secret1", "secret2", "", "çãõ-ü", strings.Repeat("x", 1024)}

	for _, p := range passwords {
		digest, err := h.Hash(p)
		require.NoError(t, err)
		assert.True(t, h.Verify(p, digest), p)

		for _, other := range passwords {
			if other != p {
				assert.False(t, h.Verify(other, digest), "%q must not verify against digest of %q", other, p)
			}
		}
	}

	other := &sha256Hasher{secret: "other-secret"}
	digest, _ := h.Hash("secret1")
	assert.False(t, other.Verify("secret1", digest))
}

func TestArgon2idHasher_HashAndVerify(t *testing.T) {
	h := fastArgon2idHasher()

	a, err := h.Hash("secret1")
	require.NoError(t, err)
	b, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.NotEqual(t, a, b, "salted digests differ")
	assert.True(t, h.Verify("secret1", a))
	assert.True(t, h.Verify("secret1", b))
	assert.False(t, h.Verify("secret2", a))
}

func TestArgon2idHasher_VerifiesLegacyDigests(t *testing.T) {
	h := fastArgon2idHasher()
	legacy, err := (&sha256Hasher{secret: testSecret}).Hash("secret1")
	require.NoError(t, err)

	assert.True(t, h.Verify("secret1", legacy))
	assert.False(t, h.Verify("secret2", legacy))
}

func TestArgon2idHasher_MalformedDigest(t *testing.T) {
	h := fastArgon2idHasher()

	for _, digest := range []string{
		"$argon2id$",
		"$argon2id$v=19$m=1024,t=1,p=1$salt",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$garbage$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
		"$argon2id$v=19$m=1024,t=0,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$a2V5",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdA$a2V5",
	} {
		assert.False(t, h.Verify("secret1", digest), digest)
	}
}
