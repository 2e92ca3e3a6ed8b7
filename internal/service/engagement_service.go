package service

import (
	"context"
	"strings"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/validation"
)

// EngagementService handles likes and comments on posts.
type EngagementService struct {
	engagementRepo repository.EngagementRepository
	postRepo       repository.PostRepository
}

type AddCommentInput struct {
	AuthorID uint
	PostID   uint
	Content  string
}

func NewEngagementService(engagementRepo repository.EngagementRepository, postRepo repository.PostRepository) *EngagementService {
	return &EngagementService{engagementRepo: engagementRepo, postRepo: postRepo}
}

func (s *EngagementService) LikePost(ctx context.Context, userID, postID uint) (*models.Like, error) {
	return s.engagementRepo.Like(ctx, userID, postID)
}

func (s *EngagementService) UnlikePost(ctx context.Context, userID, postID uint) error {
	return s.engagementRepo.Unlike(ctx, userID, postID)
}

func (s *EngagementService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment := &models.Comment{
		Content:  strings.TrimSpace(in.Content),
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
	}
	if err := s.engagementRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *EngagementService) ListComments(ctx context.Context, postID, viewerID uint, limit, offset int) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, viewerID); err != nil {
		return nil, err
	}
	return s.engagementRepo.ListComments(ctx, postID, limit, offset)
}

// DeleteComment removes a comment. Only the comment's author may do it.
func (s *EngagementService) DeleteComment(ctx context.Context, commentID, actorID uint) error {
	comment, err := s.engagementRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != actorID {
		return models.NewForbiddenError("you can only delete your own comments")
	}
	return s.engagementRepo.DeleteComment(ctx, commentID)
}
