package models

import "time"

// Comment always references exactly one user and one article; the database
// cascades the delete when either parent goes away.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	ArticleID uint      `gorm:"not null;index" json:"articleId"`
	Article   Article   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
