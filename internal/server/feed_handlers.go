package server

import (
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed?page=&limit=
func (s *Server) GetFeed(c *fiber.Ctx) error {
	p := parsePagination(c)
	posts, err := s.feedService.ComposeFeed(c.Context(), currentUserID(c), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}
