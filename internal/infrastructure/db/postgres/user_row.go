package postgres

import "time"

type userRow struct {
	ID           string
	UserName     string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}
