package account

import (
	"github.com/baechuer/user-account-service/internal/domain"
)

// Service orchestrates the credential store, hasher and token signer.
// It holds no per-request state; one instance serves all requests.
type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		signer: signer,
	}
}

// AuthResult is the common output of the token-bearing flows.
type AuthResult struct {
	User  domain.User
	Token string
}

// profileClaims builds the claim set used by register, self-service
// and check-token: the public projection of the user, nothing else.
func profileClaims(u domain.User) TokenClaims {
	return TokenClaims{
		UserID:   u.ID,
		UserName: u.UserName,
		Email:    u.Email,
	}
}
