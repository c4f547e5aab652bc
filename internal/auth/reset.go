package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"
)

// ResetTokenTTL is the validity window of a password-recovery token.
const ResetTokenTTL = 15 * time.Minute

// GenerateResetToken produces a random recovery token. The plaintext goes
// into the emailed link; only its digest and the expiry are persisted. The
// token's entropy is what protects it, so a fast unsalted digest is enough
// here; passwords still go through bcrypt.
func GenerateResetToken() (plain, digest string, expiresAt time.Time, err error) {
	buf := make([]byte, 20)
	if _, err = rand.Read(buf); err != nil {
		return "", "", time.Time{}, err
	}
	plain = base64.RawURLEncoding.EncodeToString(buf)
	return plain, HashResetToken(plain), time.Now().Add(ResetTokenTTL), nil
}

// HashResetToken digests a presented token for lookup against the stored
// value.
func HashResetToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
