package service

import (
	"strings"
	"testing"
	"time"

	"bookmarkhub/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

var testIdentity = models.Identity{ID: "u-1", Email: "alice@example.com", Name: "Alice"}

func TestTokenCodec_IssueVerifyRoundtrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)

	token, err := codec.Issue(testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, got)
}

func TestTokenCodec_TamperedSignatureFails(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)

	token, err := codec.Issue(testIdentity)
	require.NoError(t, err)

	// flip one character inside the signature segment (not the final char,
	// whose low bits are base64 padding)
	pos := len(token) - 2
	flip := byte('A')
	if token[pos] == 'A' {
		flip = 'B'
	}
	tampered := token[:pos] + string(flip) + token[pos+1:]

	_, err = codec.Verify(tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_WrongSecretFails(t *testing.T) {
	issuer := NewTokenCodec(testSecret, 24*time.Hour)
	verifier := NewTokenCodec("a-different-secret", 24*time.Hour)

	token, err := issuer.Issue(testIdentity)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_ExpiredTokenFails(t *testing.T) {
	// negative TTL issues an already-expired token
	codec := NewTokenCodec(testSecret, -time.Minute)

	token, err := codec.Issue(testIdentity)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_MalformedTokenFails(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := codec.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestTokenCodec_NonHMACAlgorithmRejected(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)

	// alg=none carries the strings "header.payload." shape; the parser must
	// reject anything that is not HMAC-signed with our secret.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "u-1", Email: "a@example.com", Name: "A",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_MissingPayloadFieldsRejected(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)

	cases := []struct {
		name   string
		claims identityClaims
	}{
		{"missing id", identityClaims{Email: "a@example.com", Name: "A"}},
		{"missing email", identityClaims{UserID: "u-1", Name: "A"}},
		{"missing name", identityClaims{UserID: "u-1", Email: "a@example.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.claims.RegisteredClaims = jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			}
			// signed with the correct secret: only the payload is deficient
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &tc.claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = codec.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidTokenPayload)
		})
	}
}

func TestTokenCodec_TokenHasThreeSegments(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)

	token, err := codec.Issue(testIdentity)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)
}
