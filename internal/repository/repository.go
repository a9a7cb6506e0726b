package repository

import (
	"bookmarkhub/internal/models"
	"context"
	"database/sql"
)

// Users is the storage contract for identity records.
type Users interface {
	Create(ctx context.Context, u *models.User) error
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// BookmarkFilter narrows Count/List. Zero-value fields are not applied.
type BookmarkFilter struct {
	PublicOnly bool
	Query      string // case-sensitive substring over title OR description
	OwnerID    string
}

// Bookmarks is the storage contract for bookmark records. Lookups that must
// honor ownership take both the record id and the owner id, so a foreign
// record is indistinguishable from a missing one.
type Bookmarks interface {
	Create(ctx context.Context, b *models.Bookmark) error
	// GetByIDAndOwner returns (nil, nil) when no bookmark matches both ids.
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Bookmark, error)
	UpdateByID(ctx context.Context, b *models.Bookmark) error
	DeleteByID(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.Bookmark, error)
	Count(ctx context.Context, f BookmarkFilter) (int, error)
	// List returns rows ordered by creation time, newest first.
	List(ctx context.Context, f BookmarkFilter, skip, take int) ([]models.PublicBookmark, error)
}

type Repository struct {
	Users     Users
	Bookmarks Bookmarks
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserRepository(db),
		Bookmarks: NewBookmarkRepository(db),
	}
}
