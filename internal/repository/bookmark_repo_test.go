package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"bookmarkhub/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockBookmarkRepo(t *testing.T) (*BookmarkRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewBookmarkRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func bookmarkColumns() []string {
	return []string{"id", "user_id", "url", "title", "description", "is_public", "is_read", "created_at", "updated_at"}
}

func TestBookmarkRepository_Create_AssignsIDAndTimestamps(t *testing.T) {
	repo, mock, cleanup := newMockBookmarkRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertBookmarkSQL)).
		WithArgs(sqlmock.AnyArg(), "owner-1", "https://go.dev", "Go", nil, true, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	b := &models.Bookmark{
		UserID:   "owner-1",
		URL:      "https://go.dev",
		Title:    "Go",
		IsPublic: true,
	}
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.ID == "" {
		t.Fatalf("id not assigned")
	}
	if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not assigned: %+v", b)
	}
}

func TestBookmarkRepository_GetByIDAndOwner(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		mockExpect   func(sqlmock.Sqlmock)
		wantBookmark bool
		wantErr      bool
	}{
		{
			name: "found",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(bookmarkColumns()).
					AddRow("b1", "owner-1", "https://go.dev", "Go", "desc", true, false, now, now)
				m.ExpectQuery(regexp.QuoteMeta(selectBookmarkByIDAndOwnerSQL)).
					WithArgs("b1", "owner-1").
					WillReturnRows(rows)
			},
			wantBookmark: true,
		},
		{
			name: "owner mismatch behaves like missing",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectBookmarkByIDAndOwnerSQL)).
					WithArgs("b1", "owner-1").
					WillReturnError(sql.ErrNoRows)
			},
			wantBookmark: false,
		},
		{
			name: "query error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectBookmarkByIDAndOwnerSQL)).
					WithArgs("b1", "owner-1").
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockBookmarkRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			b, err := repo.GetByIDAndOwner(context.Background(), "b1", "owner-1")

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantBookmark {
				if b == nil {
					t.Fatalf("expected bookmark, got nil")
				}
				if b.ID != "b1" || b.UserID != "owner-1" || b.Description == nil || *b.Description != "desc" {
					t.Fatalf("unexpected bookmark: %+v", b)
				}
				return
			}
			if b != nil {
				t.Fatalf("expected nil bookmark, got %+v", b)
			}
		})
	}
}

func TestBookmarkRepository_UpdateByID_NeverTouchesURL(t *testing.T) {
	// The UPDATE statement itself has no url column; this is the hard
	// guarantee behind url immutability.
	if regexp.MustCompile(`(?i)SET.*url`).MatchString(updateBookmarkSQL) {
		t.Fatalf("update statement mutates url: %s", updateBookmarkSQL)
	}

	repo, mock, cleanup := newMockBookmarkRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(updateBookmarkSQL)).
		WithArgs("New title", "new desc", false, true, sqlmock.AnyArg(), "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	desc := "new desc"
	b := &models.Bookmark{
		ID:          "b1",
		UserID:      "owner-1",
		URL:         "https://old.com",
		Title:       "New title",
		Description: &desc,
		IsPublic:    false,
		IsRead:      true,
	}
	if err := repo.UpdateByID(context.Background(), b); err != nil {
		t.Fatalf("UpdateByID returned error: %v", err)
	}
}

func TestBookmarkRepository_DeleteByID(t *testing.T) {
	repo, mock, cleanup := newMockBookmarkRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(deleteBookmarkSQL)).
		WithArgs("b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByID(context.Background(), "b1"); err != nil {
		t.Fatalf("DeleteByID returned error: %v", err)
	}
}

func TestBookmarkRepository_ListByOwner(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo, mock, cleanup := newMockBookmarkRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows(bookmarkColumns()).
		AddRow("b2", "owner-1", "https://b.com", "B", nil, false, true, now, now).
		AddRow("b1", "owner-1", "https://a.com", "A", "first", true, false, now.Add(-time.Hour), now)
	mock.ExpectQuery(regexp.QuoteMeta(selectBookmarksByOwnerSQL)).
		WithArgs("owner-1").
		WillReturnRows(rows)

	out, err := repo.ListByOwner(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(out))
	}
	if out[0].ID != "b2" || out[1].ID != "b1" {
		t.Fatalf("order lost: %q, %q", out[0].ID, out[1].ID)
	}
	if out[0].Description != nil {
		t.Fatalf("nil description mangled: %v", out[0].Description)
	}
	if out[1].Description == nil || *out[1].Description != "first" {
		t.Fatalf("description lost: %v", out[1].Description)
	}
}

func TestBookmarkRepository_CountAndListFilters(t *testing.T) {
	// The filter clause is shared between Count and List; assert its SQL
	// directly for each combination.
	tests := []struct {
		name      string
		filter    BookmarkFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "public only",
			filter:    BookmarkFilter{PublicOnly: true},
			wantWhere: " WHERE b.is_public = 1",
			wantArgs:  nil,
		},
		{
			name:      "public with keyword",
			filter:    BookmarkFilter{PublicOnly: true, Query: "Go"},
			wantWhere: " WHERE b.is_public = 1 AND (instr(b.title, ?) > 0 OR instr(COALESCE(b.description, ''), ?) > 0)",
			wantArgs:  []any{"Go", "Go"},
		},
		{
			name:      "public with keyword and owner",
			filter:    BookmarkFilter{PublicOnly: true, Query: "Go", OwnerID: "u1"},
			wantWhere: " WHERE b.is_public = 1 AND (instr(b.title, ?) > 0 OR instr(COALESCE(b.description, ''), ?) > 0) AND b.user_id = ?",
			wantArgs:  []any{"Go", "Go", "u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildBookmarkFilter(tt.filter)
			if where != tt.wantWhere {
				t.Fatalf("where clause:\ngot  %q\nwant %q", where, tt.wantWhere)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args: got %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Fatalf("arg %d: got %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestBookmarkRepository_Count(t *testing.T) {
	repo, mock, cleanup := newMockBookmarkRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM bookmarks b WHERE b.is_public = 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))

	total, err := repo.Count(context.Background(), BookmarkFilter{PublicOnly: true})
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if total != 23 {
		t.Fatalf("total: got %d, want 23", total)
	}
}

func TestBookmarkRepository_List_JoinsOwner(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo, mock, cleanup := newMockBookmarkRepo(t)
	defer cleanup()

	cols := append(bookmarkColumns(), "owner_id", "owner_email", "owner_name")
	rows := sqlmock.NewRows(cols).
		AddRow("b1", "u1", "https://go.dev", "Go", "desc", true, false, now, now, "u1", "alice@example.com", "Alice")
	mock.ExpectQuery("SELECT b.id, b.user_id, .* FROM bookmarks b JOIN users u ON u.id = b.user_id").
		WithArgs(10, 0).
		WillReturnRows(rows)

	out, err := repo.List(context.Background(), BookmarkFilter{PublicOnly: true}, 0, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if out[0].User.Name != "Alice" || out[0].User.Email != "alice@example.com" {
		t.Fatalf("owner not joined: %+v", out[0].User)
	}
}
