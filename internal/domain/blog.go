package domain

import "time"

type Blog struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlogPatch carries the mutable fields of a blog update.
// Nil means "leave unchanged".
type BlogPatch struct {
	Title   *string
	Content *string
}
