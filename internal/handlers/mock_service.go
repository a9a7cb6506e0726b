package handlers

import (
	"context"

	"bookmarkhub/internal/config"
	"bookmarkhub/internal/models"
	"bookmarkhub/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser  *models.User
	signUpToken string
	signUpErr   error
	signInUser  *models.User
	signInToken string
	signInErr   error
	authIdent   models.Identity
	authErr     error

	lastSignUpInput   service.RegisterInput
	lastSignInEmail   string
	lastSignInPass    string
	lastAuthToken     string
	authenticateCalls int
}

func (m *mockAuth) SignUp(ctx context.Context, in service.RegisterInput) (*models.User, string, error) {
	m.lastSignUpInput = in
	return m.signUpUser, m.signUpToken, m.signUpErr
}

func (m *mockAuth) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	m.lastSignInEmail = email
	m.lastSignInPass = password
	return m.signInUser, m.signInToken, m.signInErr
}

func (m *mockAuth) Authenticate(token string) (models.Identity, error) {
	m.lastAuthToken = token
	m.authenticateCalls++
	return m.authIdent, m.authErr
}

type mockBookmarks struct {
	createBookmark *models.Bookmark
	createErr      error
	getBookmark    *models.Bookmark
	getErr         error
	updateBookmark *models.Bookmark
	updateErr      error
	deleteErr      error
	listResp       []models.Bookmark
	listErr        error

	lastCreateOwner string
	lastCreateInput service.CreateBookmarkInput
	lastGetOwner    string
	lastGetID       string
	lastUpdateOwner string
	lastUpdateID    string
	lastUpdateInput service.UpdateBookmarkInput
	lastDeleteOwner string
	lastDeleteID    string
	lastListOwner   string
}

func (m *mockBookmarks) Create(ctx context.Context, ownerID string, in service.CreateBookmarkInput) (*models.Bookmark, error) {
	m.lastCreateOwner = ownerID
	m.lastCreateInput = in
	return m.createBookmark, m.createErr
}

func (m *mockBookmarks) Get(ctx context.Context, ownerID, id string) (*models.Bookmark, error) {
	m.lastGetOwner = ownerID
	m.lastGetID = id
	return m.getBookmark, m.getErr
}

func (m *mockBookmarks) Update(ctx context.Context, ownerID, id string, in service.UpdateBookmarkInput) (*models.Bookmark, error) {
	m.lastUpdateOwner = ownerID
	m.lastUpdateID = id
	m.lastUpdateInput = in
	return m.updateBookmark, m.updateErr
}

func (m *mockBookmarks) Delete(ctx context.Context, ownerID, id string) error {
	m.lastDeleteOwner = ownerID
	m.lastDeleteID = id
	return m.deleteErr
}

func (m *mockBookmarks) ListOwned(ctx context.Context, ownerID string) ([]models.Bookmark, error) {
	m.lastListOwner = ownerID
	return m.listResp, m.listErr
}

type mockPublicFeed struct {
	listResp   []models.PublicBookmark
	pagination models.Pagination
	listErr    error

	lastQuery service.PublicQuery
}

func (m *mockPublicFeed) List(ctx context.Context, q service.PublicQuery) ([]models.PublicBookmark, models.Pagination, error) {
	m.lastQuery = q
	return m.listResp, m.pagination, m.listErr
}

func (m *mockPublicFeed) Latest(ctx context.Context, n int) ([]models.PublicBookmark, error) {
	return m.listResp, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, cfg *config.Config) *gin.Engine {
	if cfg == nil {
		cfg = &config.Config{Env: config.EnvDevelopment}
	}
	h := NewHandler(s, nil, cfg)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
