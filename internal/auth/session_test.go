package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianfx/deskd/pkg/errors"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseSessionReadsExpiryAndSubject(t *testing.T) {
	exp := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{"sub": "ops@desk", "exp": exp.Unix()})

	s, err := ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@desk", s.Subject)
	assert.True(t, s.ExpiresAt.Equal(exp))
}

func TestParseSessionMalformedToken(t *testing.T) {
	_, err := ParseSession("not.a.jwt")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindBadRequest))
}

func TestSessionExpired(t *testing.T) {
	exp := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})
	s, err := ParseSession(token)
	require.NoError(t, err)

	assert.False(t, s.Expired(exp.Add(-time.Minute)))
	assert.True(t, s.Expired(exp))
	assert.True(t, s.Expired(exp.Add(time.Minute)))
}

func TestSessionWithoutExpiryNeverExpires(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "ops@desk"})
	s, err := ParseSession(token)
	require.NoError(t, err)

	assert.False(t, s.Expired(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
}
