package models

import (
	"time"
)

// NotificationType identifies the social action that produced a notification.
type NotificationType string

const (
	// NotificationLike is emitted when someone likes the recipient's post.
	NotificationLike NotificationType = "Like"
	// NotificationComment is emitted when someone comments on the recipient's post.
	NotificationComment NotificationType = "Comment"
	// NotificationFollow is emitted when someone follows the recipient.
	NotificationFollow NotificationType = "Follow"
)

// Notification records a social action targeting a user.
// PostID is set for Like/Comment notifications and nil for Follow.
// A notification is never created with RecipientID == SenderID.
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Type        NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	RecipientID uint             `gorm:"not null;index" json:"recipient_id"`
	SenderID    uint             `gorm:"not null" json:"sender_id"`
	PostID      *uint            `json:"post_id,omitempty"`
	IsRead      bool             `gorm:"not null;default:false" json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`

	// Relationships
	Sender User  `gorm:"foreignKey:SenderID" json:"sender"`
	Post   *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
