package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier checks an operator password against its stored hash.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// BcryptVerifier backs CredentialVerifier with bcrypt.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates BcryptVerifier with provided cost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash returns the bcrypt hash for the provided password.
func (v *BcryptVerifier) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Verify checks password against stored hash.
func (v *BcryptVerifier) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
