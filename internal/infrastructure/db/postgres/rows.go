package postgres

import "time"

type userRow struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Blocked      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type blogRow struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
