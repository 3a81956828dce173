package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a response body.
const HashHeader = "HashSHA256"

// Signer computes keyed HMAC-SHA256 digests. Hash instances are pooled to
// keep allocation off the response path.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer keyed with hashKey.
func NewSigner(hashKey string) *Signer {
	key := []byte(hashKey)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (s *Signer) Sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// SumHex returns the hex-encoded HMAC-SHA256 digest of data.
func (s *Signer) SumHex(data []byte) string {
	return hex.EncodeToString(s.Sum(data))
}

// Verify reports whether signature is the hex HMAC of data. The comparison
// is constant-time.
func (s *Signer) Verify(data []byte, signature string) bool {
	want, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(s.Sum(data), want)
}
