package service

import (
	"context"
	"testing"
	"time"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeForbidden, appErr.Code)
}

type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	touchLastLoginFn   func(context.Context, uint) error
	setActiveFn        func(context.Context, uint, bool) error
	listFn             func(context.Context, int, int) ([]models.User, error)
	suggestionsFn      func(context.Context, uint, int) ([]models.User, error)
	countAllFn         func(context.Context) (int64, error)
	countActiveSinceFn func(context.Context, time.Time) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) TouchLastLogin(ctx context.Context, id uint) error {
	return s.touchLastLoginFn(ctx, id)
}
func (s *userRepoStub) SetActive(ctx context.Context, id uint, active bool) error {
	return s.setActiveFn(ctx, id, active)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Suggestions(ctx context.Context, viewerID uint, limit int) ([]models.User, error) {
	return s.suggestionsFn(ctx, viewerID, limit)
}
func (s *userRepoStub) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}
func (s *userRepoStub) CountActiveSince(ctx context.Context, since time.Time) (int64, error) {
	return s.countActiveSinceFn(ctx, since)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:          func(context.Context, uint) (*models.User, error) { return &models.User{IsActive: true}, nil },
		getByEmailFn:       func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:           func(context.Context, *models.User) error { return nil },
		updateFn:           func(context.Context, *models.User) error { return nil },
		touchLastLoginFn:   func(context.Context, uint) error { return nil },
		setActiveFn:        func(context.Context, uint, bool) error { return nil },
		listFn:             func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		suggestionsFn:      func(context.Context, uint, int) ([]models.User, error) { return nil, nil },
		countAllFn:         func(context.Context) (int64, error) { return 0, nil },
		countActiveSinceFn: func(context.Context, time.Time) (int64, error) { return 0, nil },
	}
}

type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint, uint) (*models.Post, error)
	getAnyFn       func(context.Context, uint) (*models.Post, error)
	feedFn         func(context.Context, uint, int, int) ([]*models.Post, error)
	listByAuthorFn func(context.Context, uint, uint, int, int) ([]*models.Post, error)
	listAllFn      func(context.Context, int, int) ([]*models.Post, error)
	setActiveFn    func(context.Context, uint, bool) error
	countAllFn     func(context.Context) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *postRepoStub) GetAny(ctx context.Context, id uint) (*models.Post, error) {
	return s.getAnyFn(ctx, id)
}
func (s *postRepoStub) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, error) {
	return s.feedFn(ctx, viewerID, limit, offset)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID, viewerID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, viewerID, limit, offset)
}
func (s *postRepoStub) ListAll(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listAllFn(ctx, limit, offset)
}
func (s *postRepoStub) SetActive(ctx context.Context, id uint, active bool) error {
	return s.setActiveFn(ctx, id, active)
}
func (s *postRepoStub) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, IsActive: true}, nil
		},
		getAnyFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, IsActive: true}, nil
		},
		feedFn:         func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		listByAuthorFn: func(context.Context, uint, uint, int, int) ([]*models.Post, error) { return nil, nil },
		listAllFn:      func(context.Context, int, int) ([]*models.Post, error) { return nil, nil },
		setActiveFn:    func(context.Context, uint, bool) error { return nil },
		countAllFn:     func(context.Context) (int64, error) { return 0, nil },
	}
}

type engagementRepoStub struct {
	likeFn          func(context.Context, uint, uint) (*models.Like, error)
	unlikeFn        func(context.Context, uint, uint) error
	createCommentFn func(context.Context, *models.Comment) error
	getCommentFn    func(context.Context, uint) (*models.Comment, error)
	listCommentsFn  func(context.Context, uint, int, int) ([]models.Comment, error)
	deleteCommentFn func(context.Context, uint) error
}

func (s *engagementRepoStub) Like(ctx context.Context, userID, postID uint) (*models.Like, error) {
	return s.likeFn(ctx, userID, postID)
}
func (s *engagementRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *engagementRepoStub) CreateComment(ctx context.Context, comment *models.Comment) error {
	return s.createCommentFn(ctx, comment)
}
func (s *engagementRepoStub) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getCommentFn(ctx, id)
}
func (s *engagementRepoStub) ListComments(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	return s.listCommentsFn(ctx, postID, limit, offset)
}
func (s *engagementRepoStub) DeleteComment(ctx context.Context, id uint) error {
	return s.deleteCommentFn(ctx, id)
}

func noopEngagementRepo() *engagementRepoStub {
	return &engagementRepoStub{
		likeFn: func(_ context.Context, userID, postID uint) (*models.Like, error) {
			return &models.Like{UserID: userID, PostID: postID}, nil
		},
		unlikeFn:        func(context.Context, uint, uint) error { return nil },
		createCommentFn: func(context.Context, *models.Comment) error { return nil },
		getCommentFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listCommentsFn:  func(context.Context, uint, int, int) ([]models.Comment, error) { return nil, nil },
		deleteCommentFn: func(context.Context, uint) error { return nil },
	}
}

type followRepoStub struct {
	followFn        func(context.Context, uint, uint) error
	unfollowFn      func(context.Context, uint, uint) error
	isFollowingFn   func(context.Context, uint, uint) (bool, error)
	followingIDsFn  func(context.Context, uint) ([]uint, error)
	listFollowersFn func(context.Context, uint, uint, int, int) ([]models.User, error)
	listFollowingFn func(context.Context, uint, uint, int, int) ([]models.User, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID uint) error {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.unfollowFn(ctx, followerID, followingID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID, viewerID uint, limit, offset int) ([]models.User, error) {
	return s.listFollowersFn(ctx, userID, viewerID, limit, offset)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, userID, viewerID uint, limit, offset int) ([]models.User, error) {
	return s.listFollowingFn(ctx, userID, viewerID, limit, offset)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:        func(context.Context, uint, uint) error { return nil },
		unfollowFn:      func(context.Context, uint, uint) error { return nil },
		isFollowingFn:   func(context.Context, uint, uint) (bool, error) { return false, nil },
		followingIDsFn:  func(context.Context, uint) ([]uint, error) { return nil, nil },
		listFollowersFn: func(context.Context, uint, uint, int, int) ([]models.User, error) { return nil, nil },
		listFollowingFn: func(context.Context, uint, uint, int, int) ([]models.User, error) { return nil, nil },
	}
}

type notificationRepoStub struct {
	listByRecipientFn func(context.Context, uint, int, int) ([]models.Notification, error)
	unreadCountFn     func(context.Context, uint) (int64, error)
	markReadFn        func(context.Context, uint, uint) (*models.Notification, error)
	markAllReadFn     func(context.Context, uint) (int64, error)
}

func (s *notificationRepoStub) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]models.Notification, error) {
	return s.listByRecipientFn(ctx, recipientID, limit, offset)
}
func (s *notificationRepoStub) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	return s.unreadCountFn(ctx, recipientID)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, id, recipientID uint) (*models.Notification, error) {
	return s.markReadFn(ctx, id, recipientID)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	return s.markAllReadFn(ctx, recipientID)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		listByRecipientFn: func(context.Context, uint, int, int) ([]models.Notification, error) { return nil, nil },
		unreadCountFn:     func(context.Context, uint) (int64, error) { return 0, nil },
		markReadFn: func(_ context.Context, id, _ uint) (*models.Notification, error) {
			return &models.Notification{ID: id, IsRead: true}, nil
		},
		markAllReadFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}
