// Package service contains the application's business logic, sitting
// between the HTTP handlers and the repositories.
package service

import (
	"context"
	"net/url"
	"strings"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/validation"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	AuthorID uint
	Content  string
	ImageURL string
	Category string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	category := models.PostCategory(in.Category)
	if in.Category == "" {
		category = models.CategoryGeneral
	}
	if !models.ValidCategory(category) {
		return nil, models.NewValidationError("invalid category")
	}

	if in.ImageURL != "" {
		u, err := url.Parse(in.ImageURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, models.NewValidationError("image_url must be an http(s) URL")
		}
	}

	post := &models.Post{
		Content:  strings.TrimSpace(in.Content),
		ImageURL: in.ImageURL,
		Category: category,
		AuthorID: in.AuthorID,
		IsActive: true,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.AuthorID)
}

func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, viewerID)
}

// DeletePost deactivates the post. Only the author or an admin may do it.
func (s *PostService) DeletePost(ctx context.Context, postID, actorID uint, actorIsAdmin bool) error {
	post, err := s.postRepo.GetAny(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID && !actorIsAdmin {
		return models.NewForbiddenError("you can only delete your own posts")
	}
	if !post.IsActive {
		return models.NewNotFoundError("Post", postID)
	}
	return s.postRepo.SetActive(ctx, postID, false)
}
