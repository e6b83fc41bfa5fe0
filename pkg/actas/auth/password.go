package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/mikepea/actas/pkg/actas/models"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. Unusable hashes never match.
func CheckPassword(password, hash string) bool {
	if hash == "" || strings.HasPrefix(hash, models.UnusablePasswordPrefix) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// UnusablePassword returns a marker hash that CheckPassword always rejects.
// The random suffix keeps stored values distinct.
func UnusablePassword() string {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return models.UnusablePasswordPrefix
	}
	return models.UnusablePasswordPrefix + hex.EncodeToString(buf)
}
