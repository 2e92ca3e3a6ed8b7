package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFollowUser(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(*MockFollowRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			url:  "/users/2/follow",
			mockSetup: func(m *MockFollowRepository) {
				m.On("Follow", mock.Anything, uint(1), uint(2)).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Cannot Follow Self",
			url:            "/users/1/follow",
			mockSetup:      func(*MockFollowRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Already Following",
			url:  "/users/2/follow",
			mockSetup: func(m *MockFollowRepository) {
				m.On("Follow", mock.Anything, uint(1), uint(2)).Return(models.NewDuplicateError("Already following this user"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Target Not Found",
			url:  "/users/99/follow",
			mockSetup: func(m *MockFollowRepository) {
				m.On("Follow", mock.Anything, uint(1), uint(99)).Return(models.NewNotFoundError("User", 99))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockFollowRepository)
			s := &Server{followService: service.NewFollowService(mockRepo, new(MockUserRepository))}

			app.Use(authAs(1))
			app.Post("/users/:id/follow", s.FollowUser)

			tt.mockSetup(mockRepo)
			resp, _ := app.Test(httptest.NewRequest(http.MethodPost, tt.url, nil))
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestUnfollowUser(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockFollowRepository)
	s := &Server{followService: service.NewFollowService(mockRepo, new(MockUserRepository))}

	app.Use(authAs(1))
	app.Delete("/users/:id/follow", s.UnfollowUser)

	mockRepo.On("Unfollow", mock.Anything, uint(1), uint(2)).Return(nil)
	mockRepo.On("Unfollow", mock.Anything, uint(1), uint(3)).Return(models.NewNotFoundError("Follow", 3))

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/users/2/follow", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]bool
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body["following"])
	_ = resp.Body.Close()

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/users/3/follow", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestGetFollowers(t *testing.T) {
	app := fiber.New()
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	s := &Server{followService: service.NewFollowService(mockFollowRepo, mockUserRepo)}

	app.Get("/users/:id/followers", s.GetFollowers)

	mockUserRepo.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2, IsActive: true}, nil)
	mockFollowRepo.On("ListFollowers", mock.Anything, uint(2), uint(0), 20, 0).Return([]models.User{
		{ID: 5, Username: "follower_one"},
		{ID: 6, Username: "follower_two"},
	}, nil)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/2/followers", nil))
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 2)
}

func TestGetFollowing_UnknownUser(t *testing.T) {
	app := fiber.New()
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	s := &Server{followService: service.NewFollowService(mockFollowRepo, mockUserRepo)}

	app.Get("/users/:id/following", s.GetFollowing)

	mockUserRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, models.NewNotFoundError("User", 99))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/99/following", nil))
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
