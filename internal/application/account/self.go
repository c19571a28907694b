package account

import (
	"context"
	"strings"

	"github.com/baechuer/user-account-service/internal/domain"
)

// Self-service operations act exclusively on the identity embedded in
// the verified token, never on an id supplied by the request body.
// Each reissues a fresh profile token so the client's session keeps
// matching what is stored.

// UpdateSelf applies a partial profile update to the token's user.
func (s *Service) UpdateSelf(ctx context.Context, userID string, patch domain.UserPatch) (AuthResult, error) {
	if strings.TrimSpace(userID) == "" {
		return AuthResult{}, domain.ErrTokenInvalid()
	}
	if patch.Email != nil {
		e := strings.TrimSpace(strings.ToLower(*patch.Email))
		patch.Email = &e
	}

	updated, err := s.users.UpdateByID(ctx, userID, patch)
	if err != nil {
		return AuthResult{}, err
	}

	tok, err := s.signer.Sign(profileClaims(updated))
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: updated, Token: tok}, nil
}

// DeleteSelf removes the token's user and returns the deleted
// snapshot, signed into the reissued token.
func (s *Service) DeleteSelf(ctx context.Context, userID string) (AuthResult, error) {
	if strings.TrimSpace(userID) == "" {
		return AuthResult{}, domain.ErrTokenInvalid()
	}

	deleted, err := s.users.DeleteByID(ctx, userID)
	if err != nil {
		return AuthResult{}, err
	}

	tok, err := s.signer.Sign(profileClaims(deleted))
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: deleted, Token: tok}, nil
}

// CheckToken confirms the token's user still exists and reissues a
// profile token. A verified token whose user is gone answers
// "token not valid".
func (s *Service) CheckToken(ctx context.Context, userID string) (AuthResult, error) {
	if strings.TrimSpace(userID) == "" {
		return AuthResult{}, domain.ErrTokenInvalid()
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return AuthResult{}, domain.ErrTokenNotValid()
		}
		return AuthResult{}, err
	}

	tok, err := s.signer.Sign(profileClaims(u))
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: u, Token: tok}, nil
}
