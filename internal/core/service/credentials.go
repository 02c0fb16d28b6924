package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/directory-api/internal/core/domain"
)

// CredentialService bundles password hashing with session token issuance.
type CredentialService struct {
	codec *TokenCodec
}

func NewCredentialService(codec *TokenCodec) *CredentialService {
	return &CredentialService{codec: codec}
}

// HashPassword produces a salted bcrypt hash. The salt is random per call,
// so equal inputs never yield equal outputs; only ComparePassword is a
// meaningful equality test.
func (s *CredentialService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword checks a plaintext password against a stored hash. A
// mismatch is an error, not a false return: callers must treat it as an
// authentication failure.
func (s *CredentialService) ComparePassword(password, hash string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// IssueToken signs a session token for the given account.
func (s *CredentialService) IssueToken(user *domain.User) (string, error) {
	return s.codec.Sign(TokenClaims{ID: user.ID, Email: user.Email, Role: user.Role})
}
