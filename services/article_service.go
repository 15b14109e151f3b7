package services

import (
	"errors"
	"fmt"

	"blog-restful/models"
	"blog-restful/pagination"
	"blog-restful/repositories"

	"gorm.io/gorm"
)

// ArticleService implements the article CRUD plus paginated listing/search.
type ArticleService interface {
	Create(input *CreateArticleInput) (*models.Article, error)
	GetByID(id uint) (*models.Article, error)
	Update(id uint, actorID uint, input *UpdateArticleInput) (*models.Article, error)
	Delete(id uint, actorID uint) error
	List(params pagination.Params) ([]models.Article, int64, error)
}

type CreateArticleInput struct {
	Title        string
	Content      string
	PreviewImage string // public /uploads/... URL, may be empty
	AuthorID     uint
}

// UpdateArticleInput is the allow-listed partial update payload.
// PreviewImage is the bare uploaded filename; the service turns it into the
// public URL, as the upload endpoint hands filenames back to clients.
type UpdateArticleInput struct {
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	PreviewImage *string `json:"previewImage"`
}

type articleService struct {
	articles repositories.ArticleRepository
	users    repositories.UserRepository
}

var _ ArticleService = (*articleService)(nil)

// NewArticleService creates a new ArticleService instance
func NewArticleService(articles repositories.ArticleRepository, users repositories.UserRepository) ArticleService {
	return &articleService{articles: articles, users: users}
}

// Create resolves the owning user and persists the article.
func (s *articleService) Create(input *CreateArticleInput) (*models.Article, error) {
	if input.Title == "" || input.Content == "" {
		return nil, fmt.Errorf("title and content are required: %w", ErrValidation)
	}

	author, err := s.users.FindByID(input.AuthorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author %d does not exist: %w", input.AuthorID, ErrValidation)
		}
		return nil, fmt.Errorf("resolving author %d: %w", input.AuthorID, err)
	}

	article := models.Article{
		Title:        input.Title,
		Content:      input.Content,
		PreviewImage: input.PreviewImage,
		AuthorID:     author.ID,
		Author:       *author,
	}

	if err := s.articles.Create(&article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return &article, nil
}

// GetByID retrieves the article with its author expanded.
func (s *articleService) GetByID(id uint) (*models.Article, error) {
	article, err := s.articles.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("retrieving article %d: %w", id, err)
	}
	return article, nil
}

// Update applies the allow-listed fields. Only the owning user may mutate
// the article.
func (s *articleService) Update(id uint, actorID uint, input *UpdateArticleInput) (*models.Article, error) {
	article, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != actorID {
		return nil, fmt.Errorf("only the author may update this article: %w", ErrForbidden)
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Content != nil {
		article.Content = *input.Content
	}
	if input.PreviewImage != nil {
		article.PreviewImage = "/uploads/" + *input.PreviewImage
	}

	if err := s.articles.Update(article); err != nil {
		return nil, fmt.Errorf("failed to save article updates: %w", err)
	}
	return article, nil
}

// Delete removes the article; its comments cascade in the store. Only the
// owning user may delete it.
func (s *articleService) Delete(id uint, actorID uint) error {
	article, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if article.AuthorID != actorID {
		return fmt.Errorf("only the author may delete this article: %w", ErrForbidden)
	}

	if err := s.articles.Delete(article); err != nil {
		return fmt.Errorf("failed to delete article %d: %w", id, err)
	}
	return nil
}

// List returns one page of articles. With a query it matches the query as a
// substring of title or content; without one it returns all rows.
func (s *articleService) List(params pagination.Params) ([]models.Article, int64, error) {
	var (
		articles []models.Article
		total    int64
		err      error
	)
	if params.Query != "" {
		articles, total, err = s.articles.Search(params.Query, params.Page, params.Limit)
	} else {
		articles, total, err = s.articles.FindAll(params.Page, params.Limit)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("retrieving articles: %w", err)
	}
	return articles, total, nil
}
