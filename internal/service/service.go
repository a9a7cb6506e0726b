package service

import (
	"context"

	"bookmarkhub/internal/models"
	"bookmarkhub/internal/repository"
)

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// CreateBookmarkInput carries the fields accepted at bookmark creation.
type CreateBookmarkInput struct {
	URL         string
	Title       string
	Description *string
	IsPublic    bool
}

// UpdateBookmarkInput is a partial update: only non-nil fields are applied.
// The URL has no field here because it can never change.
type UpdateBookmarkInput struct {
	Title       *string
	Description *string
	IsPublic    *bool
	IsRead      *bool
}

// PublicQuery filters and paginates the public listing.
type PublicQuery struct {
	Query   string // case-sensitive substring over title OR description
	OwnerID string
	Page    int // 1-based
	Limit   int
}

// Authorization covers registration, login and token verification.
type Authorization interface {
	SignUp(ctx context.Context, in RegisterInput) (*models.User, string, error)
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(token string) (models.Identity, error)
}

// Bookmarks covers owner-scoped CRUD. Every record operation takes the
// owner's id and treats a foreign record as not found.
type Bookmarks interface {
	Create(ctx context.Context, ownerID string, in CreateBookmarkInput) (*models.Bookmark, error)
	Get(ctx context.Context, ownerID, id string) (*models.Bookmark, error)
	Update(ctx context.Context, ownerID, id string, in UpdateBookmarkInput) (*models.Bookmark, error)
	Delete(ctx context.Context, ownerID, id string) error
	ListOwned(ctx context.Context, ownerID string) ([]models.Bookmark, error)
}

// PublicFeed exposes the unauthenticated public listing.
type PublicFeed interface {
	List(ctx context.Context, q PublicQuery) ([]models.PublicBookmark, models.Pagination, error)
	Latest(ctx context.Context, n int) ([]models.PublicBookmark, error)
}

type Service struct {
	Authorization
	Bookmarks
	PublicFeed
}

// NewService wires the repository layer into concrete services. The token
// codec is shared so the middleware verifies with the same secret that
// issued the token.
func NewService(repos *repository.Repository, codec *TokenCodec) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, codec),
		Bookmarks:     NewBookmarkService(repos.Bookmarks),
		PublicFeed:    NewPublicService(repos.Bookmarks),
	}
}
