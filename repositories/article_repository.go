package repositories

import (
	"blog-restful/models"

	"gorm.io/gorm"
)

// ArticleRepository interface defines Article-related database operations
type ArticleRepository interface {
	Create(article *models.Article) error
	FindByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	Delete(article *models.Article) error
	FindAll(page int, limit int) ([]models.Article, int64, error)
	Search(query string, page int, limit int) ([]models.Article, int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	result := r.db.Create(article)
	return result.Error
}

// FindByID loads the article with its author expanded one level
func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	result := r.db.Preload("Author").First(&article, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &article, nil
}

func (r *articleRepository) Update(article *models.Article) error {
	result := r.db.Save(article)
	return result.Error
}

// Delete removes the Article row; its comments cascade in the database
func (r *articleRepository) Delete(article *models.Article) error {
	result := r.db.Delete(article)
	return result.Error
}

// FindAll returns one page of Articles with authors plus the total row count
func (r *articleRepository) FindAll(page int, limit int) ([]models.Article, int64, error) {
	var total int64
	if err := r.db.Model(&models.Article{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	result := r.db.Preload("Author").Offset((page - 1) * limit).Limit(limit).Find(&articles)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return articles, total, nil
}

// Search matches the query as a substring of title or content (OR semantics)
// and paginates the matches like FindAll.
func (r *articleRepository) Search(query string, page int, limit int) ([]models.Article, int64, error) {
	pattern := "%" + query + "%"

	var total int64
	if err := r.db.Model(&models.Article{}).
		Where("title LIKE ? OR content LIKE ?", pattern, pattern).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	result := r.db.Preload("Author").
		Where("title LIKE ? OR content LIKE ?", pattern, pattern).
		Offset((page - 1) * limit).Limit(limit).
		Find(&articles)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return articles, total, nil
}
