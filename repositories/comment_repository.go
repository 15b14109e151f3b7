package repositories

import (
	"blog-restful/models"

	"gorm.io/gorm"
)

// CommentRepository interface defines Comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(comment *models.Comment) error
	FindAll(page int, limit int) ([]models.Comment, int64, error)
	FindByArticleID(articleID uint, page int, limit int) ([]models.Comment, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	result := r.db.Create(comment)
	return result.Error
}

// FindByID loads the comment with its author expanded one level
func (r *commentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	result := r.db.Preload("User").First(&comment, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &comment, nil
}

func (r *commentRepository) Update(comment *models.Comment) error {
	result := r.db.Save(comment)
	return result.Error
}

func (r *commentRepository) Delete(comment *models.Comment) error {
	result := r.db.Delete(comment)
	return result.Error
}

// FindAll returns one page of Comments with their authors plus the total count
func (r *commentRepository) FindAll(page int, limit int) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	result := r.db.Preload("User").Offset((page - 1) * limit).Limit(limit).Find(&comments)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return comments, total, nil
}

// FindByArticleID returns one page of Comments belonging to an article
func (r *commentRepository) FindByArticleID(articleID uint, page int, limit int) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Where("article_id = ?", articleID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	result := r.db.Preload("User").
		Where("article_id = ?", articleID).
		Offset((page - 1) * limit).Limit(limit).
		Find(&comments)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return comments, total, nil
}
