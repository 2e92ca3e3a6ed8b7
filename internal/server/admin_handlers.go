package server

import (
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAdminStats handles GET /api/admin/stats
func (s *Server) GetAdminStats(c *fiber.Ctx) error {
	stats, err := s.adminService.Stats(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(stats)
}

// GetAdminUsers handles GET /api/admin/users
func (s *Server) GetAdminUsers(c *fiber.Ctx) error {
	p := parsePagination(c)
	users, err := s.adminService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(users)
}

// SetUserActive handles PATCH /api/admin/users/:id
func (s *Server) SetUserActive(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("is_active is required"))
	}

	if err := s.adminService.SetUserActive(c.Context(), currentUserID(c), userID, *req.IsActive); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":        userID,
		"is_active": *req.IsActive,
	})
}

// GetAdminPosts handles GET /api/admin/posts
func (s *Server) GetAdminPosts(c *fiber.Ctx) error {
	p := parsePagination(c)
	posts, err := s.adminService.ListPosts(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// SetPostActive handles PATCH /api/admin/posts/:id
func (s *Server) SetPostActive(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("is_active is required"))
	}

	if err := s.adminService.SetPostActive(c.Context(), postID, *req.IsActive); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":        postID,
		"is_active": *req.IsActive,
	})
}
