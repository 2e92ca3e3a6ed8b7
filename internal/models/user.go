// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"
)

// Role represents a user's authorization role.
type Role string

const (
	// RoleUser is the default role for registered accounts.
	RoleUser Role = "User"
	// RoleAdmin grants access to the moderation endpoints.
	RoleAdmin Role = "Admin"
)

// User represents a registered account in the Pulse application.
//
// FollowersCount, FollowingCount and PostsCount are denormalized and must only
// be written by the repositories that own the underlying edges, inside the same
// transaction as the edge mutation.
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"not null" json:"-"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Role           Role       `gorm:"type:varchar(20);not null;default:'User'" json:"role"`
	Bio            string     `json:"bio"`
	AvatarURL      string     `json:"avatar_url"`
	Website        string     `json:"website"`
	Location       string     `json:"location"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	FollowersCount int        `gorm:"not null;default:0" json:"followers_count"`
	FollowingCount int        `gorm:"not null;default:0" json:"following_count"`
	PostsCount     int        `gorm:"not null;default:0" json:"posts_count"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// IsFollowing indicates whether the requesting user follows this user (computed)
	IsFollowing bool `gorm:"-" json:"is_following,omitempty"`
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Name returns the display name combining first and last name.
func (u *User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserSummary is the lean public representation of a user, nested inside
// posts, comments, notifications and follower listings.
type UserSummary struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Summary returns the public summary of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name(),
		AvatarURL: u.AvatarURL,
	}
}
