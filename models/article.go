package models

import "time"

type Article struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	PreviewImage string    `json:"previewImage,omitempty"` // public /uploads/... URL, optional
	AuthorID     uint      `gorm:"not null;index" json:"-"`
	Author       User      `gorm:"constraint:OnDelete:CASCADE" json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
