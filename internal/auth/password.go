package auth

import (
	argon2 "github.com/andskur/argon2-hashing"
)

// HashPassword derives a one-way salted hash of the plain password.
func HashPassword(plain string) (string, error) {
	hash, err := argon2.GenerateFromPassword([]byte(plain), argon2.DefaultParams)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored hash.
func VerifyPassword(plain, hash string) bool {
	return argon2.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
