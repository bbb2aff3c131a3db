package domain

import "time"

// Bookmark belongs to exactly one user; all queries are scoped by UserID.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Link        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
