package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academicHub/internal/domain"
)

func TestNewManager_EmptySecret(t *testing.T) {
	// Act
	m, err := NewManager("", time.Hour)

	// Assert
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestGenerateAndValidateToken(t *testing.T) {
	// Arrange
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	// Act
	token, err := m.GenerateToken(42, domain.UserRoleFaculty)
	require.NoError(t, err)
	claims, err := m.ValidateToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.UserRoleFaculty, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	// Arrange
	m, err := NewManager("test-secret", time.Minute)
	require.NoError(t, err)
	issued := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }
	token, err := m.GenerateToken(1, domain.UserRoleStudent)
	require.NoError(t, err)

	// Act
	m.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = m.ValidateToken(token)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	issuer, err := NewManager("issuer-secret", time.Hour)
	require.NoError(t, err)
	verifier, err := NewManager("other-secret", time.Hour)
	require.NoError(t, err)
	token, err := issuer.GenerateToken(1, domain.UserRoleStudent)
	require.NoError(t, err)

	// Act
	_, err = verifier.ValidateToken(token)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	// Arrange
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Role: domain.UserRoleAdmin})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	// Act
	_, err = m.ValidateToken(token)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_UnknownRole(t *testing.T) {
	// Arrange
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	token, err := m.GenerateToken(5, domain.UserRole("superuser"))
	require.NoError(t, err)

	// Act
	_, err = m.ValidateToken(token)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidToken)
}
