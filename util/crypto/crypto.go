// Package crypto hashes staff account passwords. Plaintext passwords are
// never stored; login compares against the bcrypt hash only.
package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPasswordAsBcrypt returns the bcrypt hash of password at the default cost.
func HashPasswordAsBcrypt(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
