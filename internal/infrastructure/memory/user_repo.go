package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/baechuer/user-account-service/internal/domain"
)

// UserRepo is the in-memory credential store. Used in dev when no
// DB_ADDR is configured and throughout the handler tests. It enforces
// the same uniqueness rules as the postgres schema, under a lock, so
// concurrent registrations race safely here too.
type UserRepo struct {
	mu    sync.RWMutex
	byID  map[string]domain.User
	order []string // insertion order, so List is deterministic
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID: make(map[string]domain.User),
	}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, 0, len(r.byID))
	for _, id := range r.order {
		if u, ok := r.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.UserName = strings.TrimSpace(u.UserName)
	if u.ID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	if u.Role == "" {
		u.Role = string(domain.RoleUser)
	}
	if !domain.IsValidRole(u.Role) {
		return domain.User{}, domain.ErrValidationFailed("invalid value: role")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUniqueLocked(u, ""); err != nil {
		return domain.User{}, err
	}

	r.byID[u.ID] = u
	r.order = append(r.order, u.ID)
	return u, nil
}

func (r *UserRepo) UpdateByID(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}

	next := u
	if patch.UserName != nil {
		next.UserName = strings.TrimSpace(*patch.UserName)
	}
	if patch.Email != nil {
		next.Email = strings.ToLower(strings.TrimSpace(*patch.Email))
	}
	if patch.PasswordHash != nil {
		next.PasswordHash = *patch.PasswordHash
	}

	if err := r.checkUniqueLocked(next, id); err != nil {
		return domain.User{}, err
	}

	r.byID[id] = next
	return next, nil
}

func (r *UserRepo) DeleteByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	delete(r.byID, id)

	for i := range r.order {
		if r.order[i] == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return u, nil
}

// checkUniqueLocked mirrors the users_user_name_key/users_email_key
// constraints. exclude skips the record being updated.
func (r *UserRepo) checkUniqueLocked(u domain.User, exclude string) error {
	for id, existing := range r.byID {
		if id == exclude {
			continue
		}
		if existing.UserName == u.UserName {
			return domain.ErrUsernameAlreadyExists()
		}
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists()
		}
	}
	return nil
}
