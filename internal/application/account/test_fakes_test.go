package account

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/baechuer/user-account-service/internal/domain"
)

// ---- fake user repo ----

type fakeUserRepo struct {
	byID    map[string]domain.User
	byEmail map[string]domain.User

	createErr     error
	listErr       error
	getByEmailErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	if r.getByEmailErr != nil {
		return domain.User{}, r.getByEmailErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	if r.createErr != nil {
		return domain.User{}, r.createErr
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		if existing.UserName == u.UserName {
			return domain.User{}, domain.ErrUsernameAlreadyExists()
		}
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return u, nil
}

func (r *fakeUserRepo) UpdateByID(_ context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	delete(r.byEmail, u.Email)
	if patch.UserName != nil {
		u.UserName = *patch.UserName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	r.byID[id] = u
	r.byEmail[u.Email] = u
	return u, nil
}

func (r *fakeUserRepo) DeleteByID(_ context.Context, id string) (domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return u, nil
}

// ---- fake hasher ----

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (h *fakeHasher) Hash(pw string) (string, error) {
	if h.hashFn != nil {
		return h.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (h *fakeHasher) Compare(hash, pw string) error {
	if h.compareFn != nil {
		return h.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

// ---- fake signer ----

type fakeSigner struct {
	signErr error
	signed  []TokenClaims
}

func (s *fakeSigner) Sign(claims TokenClaims) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	s.signed = append(s.signed, claims)
	return fmt.Sprintf("tok-%d:%s", len(s.signed), claims.UserID), nil
}

func (s *fakeSigner) Verify(token string) (TokenClaims, error) {
	return TokenClaims{}, domain.ErrTokenInvalid()
}

// ---- wiring helper ----

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeHasher, *fakeSigner) {
	t.Helper()
	users := newFakeUserRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}
	return NewService(users, hasher, signer), users, hasher, signer
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	if !domain.Is(err, code) {
		t.Fatalf("expected domain code %q, got %v", code, err)
	}
}
