package repository

import (
	"context"
	"errors"

	"pulse/internal/cache"
	"pulse/internal/middleware"
	"pulse/internal/models"

	"gorm.io/gorm"
)

// EngagementRepository handles likes and comments. Counter updates,
// edge writes, and notification fan-out for a single action run inside
// one transaction so the denormalized counts never drift.
type EngagementRepository interface {
	Like(ctx context.Context, userID, postID uint) (*models.Like, error)
	Unlike(ctx context.Context, userID, postID uint) error
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, id uint) (*models.Comment, error)
	ListComments(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id uint) error
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository.
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// loadActivePost fetches the target post inside the transaction so the
// author is known for fan-out. Deactivated posts reject engagement.
func loadActivePost(tx *gorm.DB, postID uint) (*models.Post, error) {
	var post models.Post
	if err := tx.Where("is_active = ?", true).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}
	return &post, nil
}

func (r *engagementRepository) Like(ctx context.Context, userID, postID uint) (*models.Like, error) {
	like := &models.Like{UserID: userID, PostID: postID}
	var notified bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := loadActivePost(tx, postID)
		if err != nil {
			return err
		}
		if err := tx.Create(like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.NewDuplicateError("post already liked")
			}
			return err
		}
		if err := tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
			return err
		}
		if post.AuthorID == userID {
			return nil
		}
		notified = true
		pid := postID
		return tx.Create(&models.Notification{
			Type:        models.NotificationLike,
			RecipientID: post.AuthorID,
			SenderID:    userID,
			PostID:      &pid,
		}).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, models.NewInternalError(err)
	}
	if notified {
		middleware.NotificationsFanned.WithLabelValues(string(models.NotificationLike)).Inc()
	}
	cache.InvalidatePost(ctx, postID)
	return like, nil
}

func (r *engagementRepository) Unlike(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("Like", postID)
		}
		return tx.Model(&models.Post{}).
			Where("id = ? AND like_count > 0", postID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *engagementRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	var notified bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := loadActivePost(tx, comment.PostID)
		if err != nil {
			return err
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error; err != nil {
			return err
		}
		if post.AuthorID == comment.AuthorID {
			return nil
		}
		notified = true
		pid := comment.PostID
		return tx.Create(&models.Notification{
			Type:        models.NotificationComment,
			RecipientID: post.AuthorID,
			SenderID:    comment.AuthorID,
			PostID:      &pid,
		}).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	if notified {
		middleware.NotificationsFanned.WithLabelValues(string(models.NotificationComment)).Inc()
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (r *engagementRepository) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *engagementRepository) ListComments(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// DeleteComment removes the comment and decrements the post counter.
// Authorization happens in the service; by the time this runs the
// caller is known to own the comment.
func (r *engagementRepository) DeleteComment(ctx context.Context, id uint) error {
	var postID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Comment", id)
			}
			return err
		}
		postID = comment.PostID
		if err := tx.Delete(&models.Comment{}, id).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ? AND comment_count > 0", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
