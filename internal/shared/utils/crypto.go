package utils

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hash un mot de passe avec bcrypt (coût par défaut)
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("impossible de hasher le mot de passe: %w", err)
	}
	return string(hashed), nil
}

// IsHashedPassword reconnaît un hash bcrypt ($2a$, $2b$, $2y$)
func IsHashedPassword(value string) bool {
	if len(value) != 60 || !strings.HasPrefix(value, "$2") {
		return false
	}
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}

// VerifyPassword vérifie un mot de passe contre son hash bcrypt
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
