package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters baked into every hash we emit. Stored hashes carry
// their own parameters, so these can change without invalidating old rows.
const (
	saltLen     = 16
	keyLen      = 32
	timeCost    = 1
	memoryCost  = 64 * 1024
	parallelism = 4
)

// HashPassword encodes plaintext into a self-describing argon2id string:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<digest>
//
// A fresh random salt is generated on every call. If the entropy source
// fails the process exits; emitting a hash with a predictable salt is
// never acceptable.
func HashPassword(password string) string {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		log.Fatalf("entropy source failure: %v", err)
	}

	digest := argon2.IDKey([]byte(password), salt, timeCost, memoryCost, parallelism, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memoryCost, timeCost, parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
}

// VerifyPassword checks plaintext against an encoded hash produced by
// HashPassword. It returns false for a wrong password and for a
// malformed or foreign hash string alike; callers cannot tell the two
// apart. The digest comparison is constant time.
func VerifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var m, t uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false
	}

	got := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
