package server

import (
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications?page=&limit=
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	p := parsePagination(c)
	inbox, err := s.notificationService.GetInbox(c.Context(), currentUserID(c), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(inbox)
}

// MarkAllNotificationsRead handles PATCH /api/notifications
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if _, err := s.notificationService.MarkAllRead(c.Context(), currentUserID(c)); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// MarkNotificationRead handles PATCH /api/notifications/:id/read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	notificationID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notification, err := s.notificationService.MarkRead(c.Context(), notificationID, currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(notification)
}
