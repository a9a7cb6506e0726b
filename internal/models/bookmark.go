package models

import "time"

// Bookmark is a saved URL owned by exactly one user. The URL is fixed at
// creation time and never changes afterwards.
type Bookmark struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PublicBookmark is a bookmark row in the public listing, joined with the
// owning user's public profile.
type PublicBookmark struct {
	Bookmark
	User Owner `json:"user"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
