package account

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/baechuer/user-account-service/internal/domain"
)

// Register creates an account and issues a profile token for it.
// The caller-supplied role is ignored: every registration is forced to
// "user" so nobody self-promotes to admin through the public endpoint.
func (s *Service) Register(ctx context.Context, userName, email, password string) (AuthResult, error) {
	userName = strings.TrimSpace(userName)
	email = strings.TrimSpace(strings.ToLower(email))

	if userName == "" {
		return AuthResult{}, domain.ErrMissingField("user_name")
	}
	if email == "" {
		return AuthResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return AuthResult{}, domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		UserName:     userName,
		Email:        email,
		Role:         string(domain.RoleUser),
		PasswordHash: hash,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return AuthResult{}, err
	}

	tok, err := s.signer.Sign(profileClaims(created))
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: created, Token: tok}, nil
}
