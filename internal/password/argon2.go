// Package password implements Argon2id password hashing with a PHC-encoded
// output format and constant-time verification.
package password

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"
)

// ErrInvalidHash reports a stored hash that cannot be parsed. A parseable
// hash that simply does not match is not an error.
var ErrInvalidHash = errors.New("invalid password hash format")

const (
	saltLength = 16
	keyLength  = 32
)

// Params controls Argon2id cost. MemKiB is in KiB as required by argon2.IDKey.
type Params struct {
	Time   uint32
	MemKiB uint32
	Par    uint8
}

// DefaultParams returns a baseline suitable for interactive logins.
func DefaultParams() Params {
	return Params{Time: 3, MemKiB: 64 * 1024, Par: 2}
}

// Hasher hashes and verifies passwords. Hashing is memory- and CPU-bound, so
// concurrent work is capped by a weighted semaphore: one burst of signups
// cannot stall every other request in the process.
type Hasher struct {
	params Params
	sem    *semaphore.Weighted
}

// NewHasher creates a Hasher with the given cost parameters, allowing at
// most maxConcurrent hashing operations at a time.
func NewHasher(params Params, maxConcurrent int64) *Hasher {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Hasher{params: params, sem: semaphore.NewWeighted(maxConcurrent)}
}

// Hash derives an Argon2id key from the password under a fresh random salt
// and returns the encoded form:
//
//	$argon2id$v=19$m=<mem>,t=<time>,p=<par>$<salt_b64>$<key_b64>
//
// Two calls on the same password produce different outputs.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("failed to acquire hashing slot: %w", err)
	}
	defer h.sem.Release(1)

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.MemKiB, h.params.Par, keyLength)

	b64 := base64.RawStdEncoding
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.MemKiB, h.params.Time, h.params.Par,
		b64.EncodeToString(salt), b64.EncodeToString(key))

	return encoded, nil
}

// Verify reports whether candidate matches the encoded hash. The key
// comparison is constant-time. A malformed encoded value yields
// ErrInvalidHash; a mismatch yields (false, nil).
func (h *Hasher) Verify(ctx context.Context, encoded, candidate string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("failed to acquire hashing slot: %w", err)
	}
	defer h.sem.Release(1)

	params, salt, expected, err := decode(encoded)
	if err != nil {
		return false, err
	}

	key := argon2.IDKey([]byte(candidate), salt, params.Time, params.MemKiB, params.Par, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

// decode parses the encoded hash and returns the parameters it was created
// with, the salt and the expected key.
func decode(encoded string) (Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var params Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.MemKiB, &params.Time, &params.Par); err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if params.MemKiB == 0 || params.Time == 0 || params.Par == 0 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) < 8 {
		return Params{}, nil, nil, ErrInvalidHash
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil || len(key) < 16 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	return params, salt, key, nil
}
