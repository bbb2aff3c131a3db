package dto

import "time"

type CreateBookmarkRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=120"`
	Description string `json:"description" binding:"max=1000"`
	Link        string `json:"link" binding:"required,url"`
}

type UpdateBookmarkRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=120"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Link        *string `json:"link" binding:"omitempty,url"`
}

type BookmarkResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListBookmarksResponse struct {
	Items []BookmarkResponse `json:"items"`
}
