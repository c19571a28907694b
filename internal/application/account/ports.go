package account

import (
	"context"
	"time"

	"github.com/baechuer/user-account-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the account service needs, not HOW it's stored.
Uniqueness of user_name/email is the store's job: Create performs no
read-then-write pre-check, so a race between two registrations with
the same email must be rejected by the store's own constraint.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	UpdateByID(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	DeleteByID(ctx context.Context, id string) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Hash salts freshly per call; Compare returns nil on
match and an error otherwise, including for malformed stored hashes.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// TokenClaims is the claim set carried by a signed token. Login
// tokens carry only UserID; registration and reissued tokens carry
// the public profile as well.
type TokenClaims struct {
	UserID   string
	UserName string
	Email    string
	Exp      time.Time // zero when the token has no expiry
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.
*/
type TokenSigner interface {
	Sign(claims TokenClaims) (string, error)
	Verify(token string) (TokenClaims, error)
}
