package service

import (
	"context"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_ComposeFeed_Delegates(t *testing.T) {
	t.Parallel()
	postRepo := noopPostRepo()
	postRepo.feedFn = func(_ context.Context, viewerID uint, limit, offset int) ([]*models.Post, error) {
		assert.Equal(t, uint(1), viewerID)
		assert.Equal(t, 20, limit)
		assert.Equal(t, 40, offset)
		return []*models.Post{{ID: 3}, {ID: 2}}, nil
	}
	svc := NewFeedService(postRepo, noopUserRepo())

	posts, err := svc.ComposeFeed(context.Background(), 1, 20, 40)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestFeedService_ComposeProfileFeed_InactiveUser(t *testing.T) {
	t.Parallel()
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, IsActive: false}, nil
	}
	svc := NewFeedService(noopPostRepo(), userRepo)

	_, err := svc.ComposeProfileFeed(context.Background(), 2, 1, 20, 0)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
