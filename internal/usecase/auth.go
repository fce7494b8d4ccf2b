package usecase

import (
	"strings"

	"github.com/movecrm/backoffice/internal/config"
	domainErrors "github.com/movecrm/backoffice/internal/domain/errors"
	pkgAuth "github.com/movecrm/backoffice/internal/pkg/auth"
)

// AuthUseCase authenticates the backoffice operator and manages
// session tokens. There is a single operator account configured at
// startup.
type AuthUseCase struct {
	login        string
	passwordHash string
	verifier     pkgAuth.CredentialVerifier
	tokens       pkgAuth.TokenStrategy
}

// NewAuthUseCase constructs AuthUseCase, hashing the configured
// operator password so the plain text is not retained.
func NewAuthUseCase(cfg *config.Config, verifier pkgAuth.CredentialVerifier, strategy pkgAuth.TokenStrategy) (*AuthUseCase, error) {
	hash, err := verifier.Hash(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	return &AuthUseCase{
		login:        cfg.AdminLogin,
		passwordHash: hash,
		verifier:     verifier,
		tokens:       strategy,
	}, nil
}

// Authenticate validates operator credentials and returns a session token.
func (u *AuthUseCase) Authenticate(login, password string) (string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return "", domainErrors.ErrInvalidCredentials
	}
	if login != u.login {
		return "", domainErrors.ErrInvalidCredentials
	}
	if err := u.verifier.Verify(u.passwordHash, password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}
	return u.tokens.Issue()
}

// VerifyToken checks a session token.
func (u *AuthUseCase) VerifyToken(token string) error {
	if token == "" {
		return pkgAuth.ErrInvalidToken
	}
	return u.tokens.Verify(token)
}
