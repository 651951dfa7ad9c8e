// Package security wraps bcrypt hashing and verification of user passwords.
package security

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash of the plaintext password at the
// default cost. A hashing failure is logged and yields an empty hash.
func HashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Print(err.Error())
	}
	return string(hash)
}

// CheckPassword verifies the plaintext password against its stored bcrypt
// hash. It returns nil when they match.
func CheckPassword(hashedPassword, userPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(userPassword))
}
