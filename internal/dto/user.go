package dto

import (
	"time"

	dom "Bookmarker/internal/domain"
)

// SignupRequest is the JSON body for POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// SigninRequest is the JSON body for POST /auth/signin.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EditUserRequest is a sparse patch: nil fields are left untouched.
type EditUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"firstName" binding:"omitempty,max=120"`
	LastName  *string `json:"lastName" binding:"omitempty,max=120"`
}

// SignupResponse is returned on successful signup: id and email only.
type SignupResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

// UserResponse is the redacted user representation; there is no hash field.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SigninResponse bundles the user with a freshly minted access token.
type SigninResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

// ProfileToResponse maps a domain profile to its JSON form.
func ProfileToResponse(p dom.Profile) UserResponse {
	return UserResponse{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
