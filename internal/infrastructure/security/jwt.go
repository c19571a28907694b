package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/baechuer/user-account-service/internal/application/account"
	"github.com/baechuer/user-account-service/internal/domain"
)

// JWTSigner signs and verifies HS256 tokens with a process-wide
// secret. ttl == 0 issues tokens without an exp claim, which is what
// the deployed clients expect; a positive ttl opts into expiry.
type JWTSigner struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTSigner(secret string, issuer string, ttl time.Duration) *JWTSigner {
	return &JWTSigner{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

type accessClaims struct {
	UserID   string `json:"uid"`
	UserName string `json:"user_name,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (s *JWTSigner) Sign(claims account.TokenClaims) (string, error) {
	now := time.Now()
	c := accessClaims{
		UserID:   claims.UserID,
		UserName: claims.UserName,
		Email:    claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   s.issuer,
			Subject:  claims.UserID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

func (s *JWTSigner) Verify(token string) (account.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return account.TokenClaims{}, domain.ErrTokenExpired()
		}
		return account.TokenClaims{}, domain.ErrTokenInvalid()
	}

	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid {
		return account.TokenClaims{}, domain.ErrTokenInvalid()
	}

	exp := time.Time{}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	return account.TokenClaims{
		UserID:   claims.UserID,
		UserName: claims.UserName,
		Email:    claims.Email,
		Exp:      exp,
	}, nil
}
