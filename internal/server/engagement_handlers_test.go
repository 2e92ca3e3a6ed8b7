package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEngagementTestServer(engagementRepo *MockEngagementRepository, postRepo *MockPostRepository) *Server {
	return &Server{
		engagementService: service.NewEngagementService(engagementRepo, postRepo),
	}
}

func TestLikePost(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(*MockEngagementRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			url:  "/posts/1/like",
			mockSetup: func(m *MockEngagementRepository) {
				m.On("Like", mock.Anything, uint(1), uint(1)).Return(&models.Like{ID: 1, UserID: 1, PostID: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Already Liked",
			url:  "/posts/1/like",
			mockSetup: func(m *MockEngagementRepository) {
				m.On("Like", mock.Anything, uint(1), uint(1)).Return(nil, models.NewDuplicateError("Post already liked"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Post Not Found",
			url:  "/posts/99/like",
			mockSetup: func(m *MockEngagementRepository) {
				m.On("Like", mock.Anything, uint(1), uint(99)).Return(nil, models.NewNotFoundError("Post", 99))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid ID",
			url:            "/posts/abc/like",
			mockSetup:      func(*MockEngagementRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockEngagementRepository)
			s := newEngagementTestServer(mockRepo, new(MockPostRepository))

			app.Use(authAs(1))
			app.Post("/posts/:id/like", s.LikePost)

			tt.mockSetup(mockRepo)
			resp, _ := app.Test(httptest.NewRequest(http.MethodPost, tt.url, nil))
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestUnlikePost(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockEngagementRepository)
	s := newEngagementTestServer(mockRepo, new(MockPostRepository))

	app.Use(authAs(1))
	app.Delete("/posts/:id/like", s.UnlikePost)

	mockRepo.On("Unlike", mock.Anything, uint(1), uint(1)).Return(nil)
	mockRepo.On("Unlike", mock.Anything, uint(1), uint(2)).Return(models.NewNotFoundError("Like", 2))

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/1/like", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/posts/2/like", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreateComment(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*MockEngagementRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"content": "Nice post"},
			mockSetup: func(m *MockEngagementRepository) {
				m.On("CreateComment", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Empty Content",
			body:           map[string]string{"content": ""},
			mockSetup:      func(*MockEngagementRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Content Too Long",
			body:           map[string]string{"content": strings.Repeat("x", 281)},
			mockSetup:      func(*MockEngagementRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockEngagementRepository)
			s := newEngagementTestServer(mockRepo, new(MockPostRepository))

			app.Use(authAs(1))
			app.Post("/posts/:id/comments", s.CreateComment)

			tt.mockSetup(mockRepo)
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/posts/1/comments", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetComments(t *testing.T) {
	app := fiber.New()
	mockEngagementRepo := new(MockEngagementRepository)
	mockPostRepo := new(MockPostRepository)
	s := newEngagementTestServer(mockEngagementRepo, mockPostRepo)

	app.Get("/posts/:id/comments", s.GetComments)

	mockPostRepo.On("GetByID", mock.Anything, uint(1), uint(0)).Return(&models.Post{ID: 1, IsActive: true}, nil)
	mockEngagementRepo.On("ListComments", mock.Anything, uint(1), 20, 0).Return([]models.Comment{
		{ID: 2, PostID: 1, Content: "second"},
		{ID: 1, PostID: 1, Content: "first"},
	}, nil)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/posts/1/comments", nil))
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []models.Comment
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&comments))
	assert.Len(t, comments, 2)
}

func TestDeleteComment(t *testing.T) {
	tests := []struct {
		name           string
		comment        *models.Comment
		expectedStatus int
	}{
		{
			name:           "Author Can Delete",
			comment:        &models.Comment{ID: 7, PostID: 1, AuthorID: 1},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Stranger Forbidden",
			comment:        &models.Comment{ID: 7, PostID: 1, AuthorID: 2},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockEngagementRepository)
			s := newEngagementTestServer(mockRepo, new(MockPostRepository))

			app.Use(authAs(1))
			app.Delete("/posts/:id/comments/:commentId", s.DeleteComment)

			mockRepo.On("GetComment", mock.Anything, uint(7)).Return(tt.comment, nil)
			mockRepo.On("DeleteComment", mock.Anything, uint(7)).Return(nil)

			resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/1/comments/7", nil))
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
