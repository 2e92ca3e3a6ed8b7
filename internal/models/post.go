// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// PostCategory classifies a post.
type PostCategory string

const (
	// CategoryGeneral is the default post category.
	CategoryGeneral PostCategory = "general"
	// CategoryAnnouncement marks announcement posts.
	CategoryAnnouncement PostCategory = "announcement"
	// CategoryQuestion marks question posts.
	CategoryQuestion PostCategory = "question"
)

// ValidCategory reports whether c is a known post category.
func ValidCategory(c PostCategory) bool {
	switch c {
	case CategoryGeneral, CategoryAnnouncement, CategoryQuestion:
		return true
	}
	return false
}

// Post represents a post in the Pulse application.
//
// Posts are never hard-deleted: IsActive=false removes a post from every feed
// read while keeping Like/Comment/Notification rows referentially intact.
// LikeCount and CommentCount are denormalized and mutated only inside the same
// transaction as their owning edge.
type Post struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Content      string       `gorm:"type:text;not null" json:"content"`
	ImageURL     string       `json:"image_url,omitempty"`
	Category     PostCategory `gorm:"type:varchar(20);not null;default:'general';index" json:"category"`
	AuthorID     uint         `gorm:"not null;index" json:"author_id"`
	Author       User         `gorm:"foreignKey:AuthorID" json:"author"`
	IsActive     bool         `gorm:"not null;default:true;index" json:"is_active"`
	LikeCount    int          `gorm:"not null;default:0" json:"like_count"`
	CommentCount int          `gorm:"not null;default:0" json:"comment_count"`
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// IsLiked indicates whether the current requesting user liked this post (computed)
	IsLiked bool `gorm:"->;-:migration" json:"is_liked"`
}
