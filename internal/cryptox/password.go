// Package cryptox holds the cryptographic primitives of regvault: argon2id
// password hashing and AES-GCM sealing of stored records.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/regvault/internal/common"
)

// argon2id parameters. Chosen to match the recommended interactive profile.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword derives an argon2id digest from the plaintext password with a
// fresh random salt and returns it in PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt b64>$<digest b64>
//
// The same password hashed twice yields different strings (random salt);
// use VerifyPassword for comparisons.
func HashPassword(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(saltLen)
	digest := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
	return encoded, nil
}

// VerifyPassword re-derives the digest from the candidate password and the
// salt embedded in the encoded hash and compares them in constant time.
// It returns (false, nil) on mismatch and an error only when the encoded
// hash cannot be parsed.
func VerifyPassword(password []byte, encoded string) (bool, error) {
	salt, digest, memory, time, threads, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey(password, salt, time, memory, threads, uint32(len(digest)))
	return subtle.ConstantTimeCompare(digest, candidate) == 1, nil
}

func decodeHash(encoded string) (salt, digest []byte, memory, time uint32, threads uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}
	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	return salt, digest, memory, time, threads, nil
}

// DeriveDeviceKey stretches a device secret into a 32-byte AES key used to
// seal the secure and encrypted storage tiers.
func DeriveDeviceKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}
