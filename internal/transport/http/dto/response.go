package dto

import "github.com/baechuer/user-account-service/internal/domain"

// PublicUser is the projection safe to return to any caller.
// Password hash and role never cross this boundary.
type PublicUser struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

func PublicUserFrom(u domain.User) PublicUser {
	return PublicUser{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
	}
}

func PublicUsersFrom(users []domain.User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, PublicUserFrom(u))
	}
	return out
}

// MessageResponse is the flat response shape every write endpoint
// answers with: a message plus, depending on the flow, a token and
// the public profile. Exact messages are part of the wire contract.
type MessageResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token,omitempty"`
	User    *PublicUser `json:"user,omitempty"`
}
