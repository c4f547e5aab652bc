package auth

import "golang.org/x/crypto/bcrypt"

// Work factor matches what the rest of the stored hashes were created with.
const bcryptCost = 10

// HashPassword generates a salted bcrypt digest of the plaintext. Callers
// invoke this only on paths that set or change the password, so a stored
// digest is never hashed a second time.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
