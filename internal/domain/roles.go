package domain

type Role string

const (
	// Regular accounts. Every registration lands here no matter what
	// role the caller asked for.
	RoleUser Role = "user"
	// Admin accounts are only created out-of-band (seed / manual SQL).
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}
