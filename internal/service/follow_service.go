package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// FollowService manages the social graph.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

func (s *FollowService) Follow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return models.NewValidationError("you cannot follow yourself")
	}
	return s.followRepo.Follow(ctx, followerID, targetID)
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return models.NewValidationError("you cannot unfollow yourself")
	}
	return s.followRepo.Unfollow(ctx, followerID, targetID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, targetID)
}

func (s *FollowService) ListFollowers(ctx context.Context, userID, viewerID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowers(ctx, userID, viewerID, limit, offset)
}

func (s *FollowService) ListFollowing(ctx context.Context, userID, viewerID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, userID, viewerID, limit, offset)
}
