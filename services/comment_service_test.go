package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreate(t *testing.T) {
	articles, comments, _, fx := newArticleService(t)

	article, err := articles.Create(&CreateArticleInput{Title: "T", Content: "C", AuthorID: fx.owner.ID})
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		comment, err := comments.Create(&CreateCommentInput{Content: "nice", ArticleID: article.ID, UserID: fx.other.ID})
		require.NoError(t, err)
		assert.NotZero(t, comment.ID)
		assert.Equal(t, fx.other.ID, comment.UserID)
		assert.Equal(t, article.ID, comment.ArticleID)
		assert.Equal(t, "Other", comment.User.Name)
	})

	t.Run("Empty content", func(t *testing.T) {
		_, err := comments.Create(&CreateCommentInput{ArticleID: article.ID, UserID: fx.other.ID})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Unknown article", func(t *testing.T) {
		_, err := comments.Create(&CreateCommentInput{Content: "nice", ArticleID: 9999, UserID: fx.other.ID})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := comments.Create(&CreateCommentInput{Content: "nice", ArticleID: article.ID, UserID: 9999})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCommentOwnership(t *testing.T) {
	articles, comments, _, fx := newArticleService(t)

	article, err := articles.Create(&CreateArticleInput{Title: "T", Content: "C", AuthorID: fx.owner.ID})
	require.NoError(t, err)
	comment, err := comments.Create(&CreateCommentInput{Content: "original", ArticleID: article.ID, UserID: fx.other.ID})
	require.NoError(t, err)

	edited := "edited"
	_, err = comments.Update(comment.ID, fx.owner.ID, &UpdateCommentInput{Content: &edited})
	require.ErrorIs(t, err, ErrForbidden)

	err = comments.Delete(comment.ID, fx.owner.ID)
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := comments.Update(comment.ID, fx.other.ID, &UpdateCommentInput{Content: &edited})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	// Parents are immutable on update
	assert.Equal(t, article.ID, updated.ArticleID)
	assert.Equal(t, fx.other.ID, updated.UserID)

	require.NoError(t, comments.Delete(comment.ID, fx.other.ID))
	_, err = comments.GetByID(comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentListByArticle(t *testing.T) {
	articles, comments, _, fx := newArticleService(t)

	first, err := articles.Create(&CreateArticleInput{Title: "First", Content: "C", AuthorID: fx.owner.ID})
	require.NoError(t, err)
	second, err := articles.Create(&CreateArticleInput{Title: "Second", Content: "C", AuthorID: fx.owner.ID})
	require.NoError(t, err)

	for i := 0; i < 11; i++ {
		_, err := comments.Create(&CreateCommentInput{Content: fmt.Sprintf("c%d", i), ArticleID: first.ID, UserID: fx.other.ID})
		require.NoError(t, err)
	}
	_, err = comments.Create(&CreateCommentInput{Content: "elsewhere", ArticleID: second.ID, UserID: fx.other.ID})
	require.NoError(t, err)

	items, total, err := comments.ListByArticle(first.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.Len(t, items, 10)
	for _, c := range items {
		assert.Equal(t, first.ID, c.ArticleID)
	}

	items, total, err = comments.ListByArticle(first.ID, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.Len(t, items, 1)

	_, total, err = comments.List(1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
}
