package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost 10 matches the digests already present in existing databases;
// changing it would not invalidate them (cost is embedded per hash) but new
// hashes must stay comparable in work factor.
const passwordHashCost = 10

func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// VerifyPassword reports whether password matches the stored digest.
func VerifyPassword(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
