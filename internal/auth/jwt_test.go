package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m, err := NewJWTManager("test-secret-with-enough-entropy", time.Hour)
	require.NoError(t, err)

	token, err := m.GenerateToken("ops@example.com", RoleAdmin)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestValidateRejectsExpired(t *testing.T) {
	m, err := NewJWTManager("secret", time.Minute)
	require.NoError(t, err)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.GenerateToken("ops", RoleAdmin)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	issuer, _ := NewJWTManager("one", time.Hour)
	verifier, _ := NewJWTManager("two", time.Hour)

	token, err := issuer.GenerateToken("ops", RoleAdmin)
	require.NoError(t, err)
	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsNoneAlgorithm(t *testing.T) {
	m, _ := NewJWTManager("secret", time.Hour)
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Role: RoleAdmin})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	_, err := NewJWTManager("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
