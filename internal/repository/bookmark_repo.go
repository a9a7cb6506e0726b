package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookmarkhub/internal/models"

	"github.com/google/uuid"
)

// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS"
const sqliteTimeLayout = "2006-01-02 15:04:05"

type BookmarkRepository struct {
	db *sql.DB
}

func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

var _ Bookmarks = (*BookmarkRepository)(nil)

const (
	insertBookmarkSQL = `INSERT INTO bookmarks (id, user_id, url, title, description, is_public, is_read, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectBookmarkByIDAndOwnerSQL = `SELECT id, user_id, url, title, description, is_public, is_read, created_at, updated_at FROM bookmarks WHERE id = ? AND user_id = ?`

	// url is deliberately absent from the SET list: it is immutable.
	updateBookmarkSQL = `UPDATE bookmarks SET title = ?, description = ?, is_public = ?, is_read = ?, updated_at = ? WHERE id = ?`

	deleteBookmarkSQL = `DELETE FROM bookmarks WHERE id = ?`

	selectBookmarksByOwnerSQL = `SELECT id, user_id, url, title, description, is_public, is_read, created_at, updated_at FROM bookmarks WHERE user_id = ? ORDER BY created_at DESC`
)

// Create inserts a new bookmark. If ID or timestamps are empty, they're set.
func (r *BookmarkRepository) Create(ctx context.Context, b *models.Bookmark) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	} else {
		b.CreatedAt = b.CreatedAt.UTC()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	} else {
		b.UpdatedAt = b.UpdatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertBookmarkSQL,
		b.ID,
		b.UserID,
		b.URL,
		b.Title,
		nullableString(b.Description),
		b.IsPublic,
		b.IsRead,
		b.CreatedAt.Format(sqliteTimeLayout),
		b.UpdatedAt.Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert bookmark %q: %w", b.ID, err)
	}
	return nil
}

// GetByIDAndOwner fetches a bookmark by id AND owner id, so a record owned
// by somebody else looks exactly like a missing one. Returns (nil, nil) when
// nothing matches.
func (r *BookmarkRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, selectBookmarkByIDAndOwnerSQL, id, ownerID)
	b, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select bookmark %q: %w", id, err)
	}
	return b, nil
}

// UpdateByID persists the mutable fields of b. The caller has already proven
// ownership via GetByIDAndOwner.
func (r *BookmarkRepository) UpdateByID(ctx context.Context, b *models.Bookmark) error {
	b.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, updateBookmarkSQL,
		b.Title,
		nullableString(b.Description),
		b.IsPublic,
		b.IsRead,
		b.UpdatedAt.Format(sqliteTimeLayout),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("update bookmark %q: %w", b.ID, err)
	}
	return nil
}

func (r *BookmarkRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteBookmarkSQL, id); err != nil {
		return fmt.Errorf("delete bookmark %q: %w", id, err)
	}
	return nil
}

// ListByOwner returns all bookmarks of one user, newest first.
func (r *BookmarkRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, selectBookmarksByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks for user %q: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Bookmark, 0, 16)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns how many bookmarks match the filter.
func (r *BookmarkRepository) Count(ctx context.Context, f BookmarkFilter) (int, error) {
	where, args := buildBookmarkFilter(f)
	q := `SELECT COUNT(*) FROM bookmarks b` + where

	var total int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return total, nil
}

// List returns filtered bookmarks joined with their owner's public profile,
// newest first.
func (r *BookmarkRepository) List(ctx context.Context, f BookmarkFilter, skip, take int) ([]models.PublicBookmark, error) {
	where, args := buildBookmarkFilter(f)
	q := `SELECT b.id, b.user_id, b.url, b.title, b.description, b.is_public, b.is_read, b.created_at, b.updated_at, u.id, u.email, u.name
FROM bookmarks b JOIN users u ON u.id = b.user_id` +
		where + ` ORDER BY b.created_at DESC LIMIT ? OFFSET ?`
	args = append(args, take, skip)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	out := make([]models.PublicBookmark, 0, take)
	for rows.Next() {
		var (
			pb      models.PublicBookmark
			descStr sql.NullString
		)
		if err := rows.Scan(
			&pb.ID, &pb.UserID, &pb.URL, &pb.Title, &descStr,
			&pb.IsPublic, &pb.IsRead, &pb.CreatedAt, &pb.UpdatedAt,
			&pb.User.ID, &pb.User.Email, &pb.User.Name,
		); err != nil {
			return nil, err
		}
		if descStr.Valid {
			s := descStr.String
			pb.Description = &s
		}
		pb.CreatedAt = pb.CreatedAt.UTC()
		pb.UpdatedAt = pb.UpdatedAt.UTC()
		out = append(out, pb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// buildBookmarkFilter assembles the WHERE clause for Count/List. Conditions
// combine with AND. The keyword match uses instr() because SQLite LIKE is
// case-insensitive for ASCII and the keyword filter is case-sensitive.
func buildBookmarkFilter(f BookmarkFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.PublicOnly {
		conds = append(conds, "b.is_public = 1")
	}
	if f.Query != "" {
		conds = append(conds, "(instr(b.title, ?) > 0 OR instr(COALESCE(b.description, ''), ?) > 0)")
		args = append(args, f.Query, f.Query)
	}
	if f.OwnerID != "" {
		conds = append(conds, "b.user_id = ?")
		args = append(args, f.OwnerID)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBookmark(s scanner) (*models.Bookmark, error) {
	var (
		b       models.Bookmark
		descStr sql.NullString
	)
	if err := s.Scan(
		&b.ID, &b.UserID, &b.URL, &b.Title, &descStr,
		&b.IsPublic, &b.IsRead, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if descStr.Valid {
		s := descStr.String
		b.Description = &s
	}
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return &b, nil
}

func nullableString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
