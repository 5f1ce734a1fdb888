package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func TestIssueParse_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	signed, claims, err := issuer.Issue("12345678901")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)

	parsed, err := issuer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "12345678901", parsed.CPF)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestIssue_UniqueIDs(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	_, a, err := issuer.Issue("12345678901")
	require.NoError(t, err)
	_, b, err := issuer.Issue("12345678901")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParse_Expired(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	signed, _, err := issuer.Issue("12345678901")
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_NoExpiryWhenTTLZero(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0)
	signed, claims, err := issuer.Issue("12345678901")
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)

	_, err = issuer.Parse(signed)
	assert.NoError(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	signed, _, err := NewTokenIssuer(testSecret, time.Hour).Issue("12345678901")
	require.NoError(t, err)

	_, err = NewTokenIssuer("another-secret", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{CPF: "12345678901", RegisteredClaims: jwt.RegisteredClaims{ID: "x"}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenIssuer(testSecret, time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RequiresCPF(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{ID: "x"}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenIssuer(testSecret, time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := NewTokenIssuer(testSecret, time.Hour).Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
