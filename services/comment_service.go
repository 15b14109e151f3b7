package services

import (
	"errors"
	"fmt"

	"blog-restful/models"
	"blog-restful/repositories"

	"gorm.io/gorm"
)

// CommentService implements comment CRUD plus the two paginated listings.
type CommentService interface {
	Create(input *CreateCommentInput) (*models.Comment, error)
	GetByID(id uint) (*models.Comment, error)
	Update(id uint, actorID uint, input *UpdateCommentInput) (*models.Comment, error)
	Delete(id uint, actorID uint) error
	List(page int, limit int) ([]models.Comment, int64, error)
	ListByArticle(articleID uint, page int, limit int) ([]models.Comment, int64, error)
}

type CreateCommentInput struct {
	Content   string `json:"content"`
	ArticleID uint   `json:"articleId"`
	UserID    uint   `json:"-"` // taken from the authenticated identity
}

// UpdateCommentInput allow-lists content only; a comment can never be moved
// to another article or user.
type UpdateCommentInput struct {
	Content *string `json:"content"`
}

type commentService struct {
	comments repositories.CommentRepository
	users    repositories.UserRepository
	articles repositories.ArticleRepository
}

var _ CommentService = (*commentService)(nil)

// NewCommentService creates a new CommentService instance
func NewCommentService(comments repositories.CommentRepository, users repositories.UserRepository, articles repositories.ArticleRepository) CommentService {
	return &commentService{comments: comments, users: users, articles: articles}
}

// Create resolves both parents before persisting the comment.
func (s *commentService) Create(input *CreateCommentInput) (*models.Comment, error) {
	if input.Content == "" {
		return nil, fmt.Errorf("content is required: %w", ErrValidation)
	}

	user, err := s.users.FindByID(input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", input.UserID, ErrNotFound)
		}
		return nil, fmt.Errorf("resolving user %d: %w", input.UserID, err)
	}

	article, err := s.articles.FindByID(input.ArticleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("article %d: %w", input.ArticleID, ErrNotFound)
		}
		return nil, fmt.Errorf("resolving article %d: %w", input.ArticleID, err)
	}

	comment := models.Comment{
		Content:   input.Content,
		UserID:    user.ID,
		User:      *user,
		ArticleID: article.ID,
	}

	if err := s.comments.Create(&comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

// GetByID retrieves the comment with its author expanded.
func (s *commentService) GetByID(id uint) (*models.Comment, error) {
	comment, err := s.comments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("retrieving comment %d: %w", id, err)
	}
	return comment, nil
}

// Update applies the allow-listed fields. Only the owning user may mutate
// the comment.
func (s *commentService) Update(id uint, actorID uint, input *UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID {
		return nil, fmt.Errorf("only the author may update this comment: %w", ErrForbidden)
	}

	if input.Content != nil {
		comment.Content = *input.Content
	}

	if err := s.comments.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to save comment updates: %w", err)
	}
	return comment, nil
}

// Delete removes the comment. Only the owning user may delete it.
func (s *commentService) Delete(id uint, actorID uint) error {
	comment, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if comment.UserID != actorID {
		return fmt.Errorf("only the author may delete this comment: %w", ErrForbidden)
	}

	if err := s.comments.Delete(comment); err != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, err)
	}
	return nil
}

// List returns one page of all comments.
func (s *commentService) List(page int, limit int) ([]models.Comment, int64, error) {
	comments, total, err := s.comments.FindAll(page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("retrieving comments: %w", err)
	}
	return comments, total, nil
}

// ListByArticle returns one page of an article's comments.
func (s *commentService) ListByArticle(articleID uint, page int, limit int) ([]models.Comment, int64, error) {
	comments, total, err := s.comments.FindByArticleID(articleID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("retrieving comments for article %d: %w", articleID, err)
	}
	return comments, total, nil
}
