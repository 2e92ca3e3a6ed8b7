package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// FeedService composes personalized timelines.
type FeedService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewFeedService(postRepo repository.PostRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{postRepo: postRepo, userRepo: userRepo}
}

// ComposeFeed returns active posts from the viewer and everyone the
// viewer follows, newest first.
func (s *FeedService) ComposeFeed(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.Feed(ctx, viewerID, limit, offset)
}

// ComposeProfileFeed returns a single user's active posts as seen by the
// viewer. The profile owner must exist.
func (s *FeedService) ComposeProfileFeed(ctx context.Context, profileUserID, viewerID uint, limit, offset int) ([]*models.Post, error) {
	user, err := s.userRepo.GetByID(ctx, profileUserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, models.NewNotFoundError("User", profileUserID)
	}
	return s.postRepo.ListByAuthor(ctx, profileUserID, viewerID, limit, offset)
}
