package account

import (
	"context"
	"strings"

	"github.com/baechuer/user-account-service/internal/domain"
)

// Login authenticates by email ("username" on the wire carries the
// email address) and issues a token holding only the user id.
// IMPORTANT: must not leak whether the email exists. Unknown user and
// wrong password fail identically.
func (s *Service) Login(ctx context.Context, username, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return AuthResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, username)
	if err != nil {
		// Hide not-found behind invalid credentials. Anything else is
		// a store failure and must surface as one, not as a bad login.
		if domain.Is(err, "user_not_found") {
			return AuthResult{}, domain.ErrInvalidCredentials()
		}
		return AuthResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return AuthResult{}, domain.ErrInvalidCredentials()
	}

	tok, err := s.signer.Sign(TokenClaims{UserID: u.ID})
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: u, Token: tok}, nil
}
