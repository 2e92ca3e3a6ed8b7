package service

import (
	"context"
	"net/url"
	"strings"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/validation"
)

const suggestionCount = 5

// UserService handles profiles and discovery.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

type UpdateProfileInput struct {
	UserID    uint
	Username  string
	FirstName string
	LastName  string
	Bio       string
	AvatarURL string
	Website   string
	Location  string
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo}
}

// GetProfile returns a user's profile with the viewer's follow state
// resolved. Deactivated profiles are hidden from everyone but admins.
func (s *UserService) GetProfile(ctx context.Context, userID, viewerID uint, viewerIsAdmin bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive && !viewerIsAdmin {
		return nil, models.NewNotFoundError("User", userID)
	}
	if viewerID != 0 && viewerID != userID {
		following, err := s.followRepo.IsFollowing(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
		user.IsFollowing = following
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = in.Username
	}
	if in.FirstName != "" {
		if len(in.FirstName) > 50 {
			return nil, models.NewValidationError("first name must not exceed 50 characters")
		}
		user.FirstName = strings.TrimSpace(in.FirstName)
	}
	if in.LastName != "" {
		if len(in.LastName) > 50 {
			return nil, models.NewValidationError("last name must not exceed 50 characters")
		}
		user.LastName = strings.TrimSpace(in.LastName)
	}
	if in.Bio != "" {
		if len(in.Bio) > 500 {
			return nil, models.NewValidationError("bio must not exceed 500 characters")
		}
		user.Bio = in.Bio
	}
	if in.AvatarURL != "" {
		if !validHTTPURL(in.AvatarURL) {
			return nil, models.NewValidationError("avatar_url must be an http(s) URL")
		}
		user.AvatarURL = in.AvatarURL
	}
	if in.Website != "" {
		if !validHTTPURL(in.Website) {
			return nil, models.NewValidationError("website must be an http(s) URL")
		}
		user.Website = in.Website
	}
	if in.Location != "" {
		if len(in.Location) > 100 {
			return nil, models.NewValidationError("location must not exceed 100 characters")
		}
		user.Location = in.Location
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Suggestions returns up to five active users the viewer could follow.
func (s *UserService) Suggestions(ctx context.Context, viewerID uint) ([]models.User, error) {
	return s.userRepo.Suggestions(ctx, viewerID, suggestionCount)
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
