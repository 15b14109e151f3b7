package services

import (
	"fmt"
	"strings"
	"testing"

	"blog-restful/config"
	"blog-restful/database"
	"blog-restful/models"
	"blog-restful/repositories"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory database per test. The DSN enables
// foreign keys on every pooled connection so cascades fire like they do on
// the real store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.New(config.Config{
		DatabaseDriver: "sqlite",
		DatabaseURL:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name),
	})
	require.NoError(t, err)
	return db
}

// seedUser inserts a user with a bcrypt-hashed password directly through
// the repository.
func seedUser(t *testing.T, db *gorm.DB, email, password, name string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{Email: email, Password: string(hashed), Name: name}
	require.NoError(t, repositories.NewUserRepository(db).Create(user))
	require.NotZero(t, user.ID)
	return user
}
