package services

import (
	"testing"

	"blog-restful/auth"
	"blog-restful/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))
	seedUser(t, db, "alice@example.com", "correct-horse", "Alice")

	t.Run("Valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate("alice@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("alice@example.com", "battery-staple")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := svc.Authenticate("nobody@example.com", "correct-horse")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))
	alice := seedUser(t, db, "alice@example.com", "correct-horse", "Alice")

	token, err := svc.Login("alice@example.com", "correct-horse")
	require.NoError(t, err)

	// The issued token carries the user's identity
	claims, err := auth.ParseAndValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)

	_, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))

	token, err := svc.Refresh(42, "carol@example.com")
	require.NoError(t, err)

	claims, err := auth.ParseAndValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "carol@example.com", claims.Email)
}
