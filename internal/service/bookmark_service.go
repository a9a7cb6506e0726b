package service

import (
	"context"
	"errors"
	"net/url"

	"bookmarkhub/internal/models"
	"bookmarkhub/internal/repository"
)

// Domain errors for bookmark flows.
var (
	ErrInvalidURL = errors.New("invalid url")
	// ErrNotFound is returned both for genuinely missing bookmarks and for
	// bookmarks owned by somebody else, so existence never leaks.
	ErrNotFound = errors.New("bookmark not found")
)

// BookmarkService implements owner-scoped bookmark CRUD.
type BookmarkService struct {
	repo repository.Bookmarks
}

func NewBookmarkService(repo repository.Bookmarks) *BookmarkService {
	return &BookmarkService{repo: repo}
}

// Create validates and stores a new bookmark for ownerID.
func (s *BookmarkService) Create(ctx context.Context, ownerID string, in CreateBookmarkInput) (*models.Bookmark, error) {
	if in.URL == "" || in.Title == "" {
		return nil, ErrMissingFields
	}
	if !validBookmarkURL(in.URL) {
		return nil, ErrInvalidURL
	}

	b := &models.Bookmark{
		UserID:      ownerID,
		URL:         in.URL,
		Title:       in.Title,
		Description: in.Description,
		IsPublic:    in.IsPublic,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Get fetches a single bookmark owned by ownerID.
func (s *BookmarkService) Get(ctx context.Context, ownerID, id string) (*models.Bookmark, error) {
	b, err := s.repo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// Update applies the fields present in the input to a bookmark owned by
// ownerID. Absent fields are left untouched; the URL never changes.
func (s *BookmarkService) Update(ctx context.Context, ownerID, id string, in UpdateBookmarkInput) (*models.Bookmark, error) {
	b, err := s.repo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Description != nil {
		b.Description = in.Description
	}
	if in.IsPublic != nil {
		b.IsPublic = *in.IsPublic
	}
	if in.IsRead != nil {
		b.IsRead = *in.IsRead
	}

	if err := s.repo.UpdateByID(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a bookmark owned by ownerID.
func (s *BookmarkService) Delete(ctx context.Context, ownerID, id string) error {
	b, err := s.repo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}
	return s.repo.DeleteByID(ctx, b.ID)
}

// ListOwned returns all bookmarks of the owner, newest first.
func (s *BookmarkService) ListOwned(ctx context.Context, ownerID string) ([]models.Bookmark, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// validBookmarkURL requires a syntactically well-formed absolute URL with a
// scheme and a host.
func validBookmarkURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
