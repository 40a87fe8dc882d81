package handlers

import (
	"errors"

	"bloodbridge/internal/core/services"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List handles role-scoped notification listing
// @Summary List notifications
// @Description List notifications visible to the caller, newest first
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	notifications, err := h.notificationService.List(c.Context(), identity)
	if err != nil {
		return response.InternalServerError(c, "Failed to list notifications")
	}

	return response.Success(c, "Notifications retrieved successfully", notifications)
}

// MarkRead handles marking a notification as read
// @Summary Mark notification read
// @Description Mark a notification as read
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	notificationID, err := c.ParamsInt("id")
	if err != nil || notificationID < 1 {
		return response.BadRequest(c, "Invalid notification ID")
	}

	notification, err := h.notificationService.MarkRead(c.Context(), uint(notificationID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotificationNotFound):
			return response.NotFound(c, "Notification not found")
		default:
			return response.InternalServerError(c, "Failed to mark notification as read")
		}
	}

	return response.Success(c, "Notification marked as read", notification)
}
