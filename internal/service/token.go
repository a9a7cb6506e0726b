package service

import (
	"errors"
	"fmt"
	"time"

	"bookmarkhub/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures.
var (
	// ErrInvalidToken covers malformed tokens, bad signatures, wrong signing
	// algorithms and expired tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidTokenPayload means the signature checked out but a required
	// identity field is missing from the claims.
	ErrInvalidTokenPayload = errors.New("invalid token payload")
)

// identityClaims is the JWT claim set: the session identity plus the
// registered iat/exp claims.
type identityClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// TokenCodec issues and verifies signed session tokens. The secret is loaded
// once at startup and never changes; tokens are the only session state.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs the identity with HS256, valid from now for the codec's TTL.
func (c *TokenCodec) Issue(id models.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: id.ID,
		Email:  id.Email,
		Name:   id.Name,
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns the identity it carries.
// All three identity fields must be present, otherwise the token is rejected
// even with a valid signature.
func (c *TokenCodec) Verify(tokenString string) (models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return models.Identity{}, ErrInvalidToken
	}
	if claims.UserID == "" || claims.Email == "" || claims.Name == "" {
		return models.Identity{}, ErrInvalidTokenPayload
	}

	return models.Identity{ID: claims.UserID, Email: claims.Email, Name: claims.Name}, nil
}
