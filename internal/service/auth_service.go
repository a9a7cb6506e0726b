package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookmarkhub/internal/models"
	"bookmarkhub/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrEmailTaken    = errors.New("email is already registered")
	// ErrInvalidCredentials is the single error for every login failure.
	// Callers must not learn whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles registration, login and token verification.
type AuthService struct {
	users repository.Users
	codec *TokenCodec
}

func NewAuthService(users repository.Users, codec *TokenCodec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

// SignUp validates the input, rejects duplicate emails, stores the user with
// a bcrypt hash and returns the user together with a fresh session token.
func (s *AuthService) SignUp(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, "", ErrMissingFields
	}
	if !validEmail(in.Email) {
		return nil, "", ErrInvalidEmail
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.codec.Issue(u.Identity())
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// SignIn verifies credentials and returns the user with a fresh session
// token. A missing user and a wrong password yield the identical error.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !verifyPassword(password, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.codec.Issue(u.Identity())
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate verifies a session token and returns the identity it carries.
func (s *AuthService) Authenticate(token string) (models.Identity, error) {
	return s.codec.Verify(token)
}

// helper: hash password. Any non-empty password is acceptable, including
// whitespace-only ones; presence is checked in SignUp.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash; a mismatch is just false, never an error
func verifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validEmail checks the registration email shape: exactly one '@' with
// non-whitespace on both sides, and a '.' inside the domain part.
func validEmail(s string) bool {
	if strings.Count(s, "@") != 1 {
		return false
	}
	at := strings.Index(s, "@")
	local, domain := s[:at], s[at+1:]
	if local == "" || domain == "" {
		return false
	}
	if strings.ContainsAny(local, " \t\r\n") || strings.ContainsAny(domain, " \t\r\n") {
		return false
	}
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
