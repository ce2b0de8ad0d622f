package user

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const saltLen = 8

// HashPassword returns salt||argon2id(password, salt) with a fresh random salt.
func HashPassword(plainPassword string) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	return hashPass(salt, plainPassword), nil
}

func CheckPassword(passHash []byte, plainPassword string) bool {
	if len(passHash) < saltLen {
		return false
	}

	salt := make([]byte, saltLen)
	copy(salt, passHash[:saltLen])
	return subtle.ConstantTimeCompare(hashPass(salt, plainPassword), passHash) == 1
}

func hashPass(salt []byte, plainPassword string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), salt, 1, 64*1024, 4, 32)
	return append(salt, hashedPass...)
}
