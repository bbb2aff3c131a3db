package domain

import "time"

// User is the domain entity for an account. Hash is the encoded password
// hash and must never leave the service layer; hand out Profile instead.
type User struct {
	ID        int64
	Email     string
	Hash      string
	FirstName *string
	LastName  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the outward view of a User. It has no hash field at all, so a
// forgotten redaction cannot happen on any code path that returns one.
type Profile struct {
	ID        int64
	Email     string
	FirstName *string
	LastName  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile projects the user onto its redacted view.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
