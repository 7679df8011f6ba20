// Package password wraps bcrypt hashing and verification of user passwords.
// The salt is embedded in the digest, so no separate salt storage exists.
package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest of plaintext. A fresh salt is drawn
// per call, so two hashes of the same password differ.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A wrong
// password is an ordinary false, never an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
