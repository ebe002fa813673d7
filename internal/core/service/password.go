package service

import "golang.org/x/crypto/bcrypt"

// hashPassword returns a salted one-way digest of plain. The salt is random
// and embedded in the output, so two calls with the same input produce
// different digests.
func hashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// verifyPassword reports whether plain matches digest. A malformed digest
// fails verification instead of surfacing an error.
func verifyPassword(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
