package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/refurnish/authcore/internal/common"
)

const (
	saltSize = 32
	keyLen   = 32
)

// PasswordHasher derives one-way, salted password hashes with argon2id.
// Time and memory cost are configurable work factors; thread count is fixed.
type PasswordHasher struct {
	timeCost  uint32
	memoryKiB uint32
	threads   uint8
}

// NewPasswordHasher builds a hasher with the given work factors. Zero values
// fall back to the development defaults.
func NewPasswordHasher(timeCost, memoryKiB uint32) *PasswordHasher {
	if timeCost == 0 {
		timeCost = 1
	}
	if memoryKiB == 0 {
		memoryKiB = 64 * 1024
	}
	return &PasswordHasher{timeCost: timeCost, memoryKiB: memoryKiB, threads: 4}
}

// Hash derives a hash for plaintext with a fresh random salt and returns both.
// The only failure mode is the system entropy source.
func (h *PasswordHasher) Hash(plaintext string) (hash, salt []byte, err error) {
	salt, err = common.GenerateRandByteArray(saltSize)
	if err != nil {
		return nil, nil, fmt.Errorf("error generating salt: %w", err)
	}
	hash = argon2.IDKey([]byte(plaintext), salt, h.timeCost, h.memoryKiB, h.threads, keyLen)
	return hash, salt, nil
}

// Verify reports whether plaintext matches the stored hash and salt, comparing
// in constant time. Malformed stored values (empty or wrong-length hash or
// salt) verify false rather than erroring.
func (h *PasswordHasher) Verify(plaintext string, hash, salt []byte) bool {
	if len(hash) != keyLen || len(salt) == 0 {
		return false
	}
	candidate := argon2.IDKey([]byte(plaintext), salt, h.timeCost, h.memoryKiB, h.threads, keyLen)
	return subtle.ConstantTimeCompare(hash, candidate) == 1
}
