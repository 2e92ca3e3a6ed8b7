package service

import (
	"context"
	"time"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// AdminService backs the moderation panel.
type AdminService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

// AdminStats is the dashboard summary.
type AdminStats struct {
	TotalUsers  int64 `json:"total_users"`
	TotalPosts  int64 `json:"total_posts"`
	ActiveToday int64 `json:"active_today"`
}

func NewAdminService(userRepo repository.UserRepository, postRepo repository.PostRepository) *AdminService {
	return &AdminService{userRepo: userRepo, postRepo: postRepo}
}

// Stats counts users, posts, and users who logged in since local
// midnight.
func (s *AdminService) Stats(ctx context.Context) (*AdminStats, error) {
	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalPosts, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	activeToday, err := s.userRepo.CountActiveSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	return &AdminStats{
		TotalUsers:  totalUsers,
		TotalPosts:  totalPosts,
		ActiveToday: activeToday,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// SetUserActive toggles an account. Admins cannot deactivate themselves.
func (s *AdminService) SetUserActive(ctx context.Context, actorID, targetID uint, active bool) error {
	if actorID == targetID && !active {
		return models.NewValidationError("you cannot deactivate your own account")
	}
	return s.userRepo.SetActive(ctx, targetID, active)
}

func (s *AdminService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.ListAll(ctx, limit, offset)
}

func (s *AdminService) SetPostActive(ctx context.Context, postID uint, active bool) error {
	return s.postRepo.SetActive(ctx, postID, active)
}
