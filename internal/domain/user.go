package domain

// User is the stored account record. Owned by the credential store;
// everything outside receives copies or the public projection.
type User struct {
	ID           string
	UserName     string
	Email        string
	Role         string
	PasswordHash string
}

// UserPatch is a partial update for self-service profile edits.
// Nil fields are left untouched.
type UserPatch struct {
	UserName     *string
	Email        *string
	PasswordHash *string
}

func (p UserPatch) Empty() bool {
	return p.UserName == nil && p.Email == nil && p.PasswordHash == nil
}
