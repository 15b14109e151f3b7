package services

import (
	"testing"

	"blog-restful/pagination"
	"blog-restful/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	t.Run("Success", func(t *testing.T) {
		user, err := svc.Register(&RegisterInput{Email: "a@b.com", Password: "pw1234", Name: "A"})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "a@b.com", user.Email)

		// Stored password is a hash of the input, never the plaintext
		assert.NotEqual(t, "pw1234", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw1234")))
	})

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := svc.Register(&RegisterInput{Email: "a@b.com", Password: "other", Name: "B"})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Missing fields", func(t *testing.T) {
		_, err := svc.Register(&RegisterInput{Email: "c@d.com"})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestUserUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	alice := seedUser(t, db, "alice@example.com", "password", "Alice")
	bob := seedUser(t, db, "bob@example.com", "password", "Bob")

	t.Run("Self update applies allow-listed fields", func(t *testing.T) {
		newName := "Alice Updated"
		updated, err := svc.Update(alice.ID, alice.ID, &UpdateUserInput{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, "Alice Updated", updated.Name)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("Email conflict", func(t *testing.T) {
		taken := "bob@example.com"
		_, err := svc.Update(alice.ID, alice.ID, &UpdateUserInput{Email: &taken})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Other user is forbidden", func(t *testing.T) {
		newName := "Hijacked"
		_, err := svc.Update(alice.ID, bob.ID, &UpdateUserInput{Name: &newName})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Unknown user", func(t *testing.T) {
		newName := "Nobody"
		_, err := svc.Update(9999, 9999, &UpdateUserInput{Name: &newName})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	users := NewUserService(userRepo)
	articles := NewArticleService(articleRepo, userRepo)
	comments := NewCommentService(commentRepo, userRepo, articleRepo)

	owner := seedUser(t, db, "owner@example.com", "password", "Owner")

	article, err := articles.Create(&CreateArticleInput{Title: "T", Content: "C", AuthorID: owner.ID})
	require.NoError(t, err)
	comment, err := comments.Create(&CreateCommentInput{Content: "first!", ArticleID: article.ID, UserID: owner.ID})
	require.NoError(t, err)

	require.NoError(t, users.Delete(owner.ID, owner.ID))

	_, err = articles.GetByID(article.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = comments.GetByID(comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = users.GetByID(owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	for i := 0; i < 3; i++ {
		seedUser(t, db, string(rune('a'+i))+"@example.com", "password", "U")
	}

	page, limit := pagination.Normalize(0, -1) // coerced to defaults
	users, total, err := svc.List(page, limit)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 3)
}
