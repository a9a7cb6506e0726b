package service

import (
	"context"

	"bookmarkhub/internal/models"
	"bookmarkhub/internal/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PublicService serves the unauthenticated public listing. Visibility is not
// negotiable: every query is pinned to public bookmarks only.
type PublicService struct {
	repo repository.Bookmarks
}

func NewPublicService(repo repository.Bookmarks) *PublicService {
	return &PublicService{repo: repo}
}

// List returns one page of public bookmarks. The keyword filter matches
// case-sensitive substrings of title or description; combined with the owner
// filter the semantics are AND. Pages are 1-based.
func (s *PublicService) List(ctx context.Context, q PublicQuery) ([]models.PublicBookmark, models.Pagination, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := repository.BookmarkFilter{
		PublicOnly: true,
		Query:      q.Query,
		OwnerID:    q.OwnerID,
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	items, err := s.repo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	p := models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
	return items, p, nil
}

// Latest returns the n most recent public bookmarks. Used by the feed.
func (s *PublicService) Latest(ctx context.Context, n int) ([]models.PublicBookmark, error) {
	if n < 1 {
		n = defaultPageLimit
	}
	return s.repo.List(ctx, repository.BookmarkFilter{PublicOnly: true}, 0, n)
}
