package handlers

import (
	"errors"
	"strings"

	"bloodbridge/internal/core/domain"
	"bloodbridge/internal/core/services"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles blood request endpoints
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// SubmitRequestBody represents a blood request submission
type SubmitRequestBody struct {
	BloodGroup string `json:"blood_group"`
	Region     string `json:"region"`
	Hospital   string `json:"hospital"`
	Notes      string `json:"notes"`
	Status     string `json:"status"`
}

// UpdateStatusBody represents a request status change
type UpdateStatusBody struct {
	Status string `json:"status"`
}

// Submit handles blood request submission
// @Summary Submit blood request
// @Description Submit a blood request and notify matching donors
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitRequestBody true "Request data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Submit(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req SubmitRequestBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.SubmitInput{
		BloodGroup: strings.TrimSpace(req.BloodGroup),
		Region:     strings.TrimSpace(req.Region),
		Hospital:   strings.TrimSpace(req.Hospital),
		Notes:      req.Notes,
		Status:     strings.TrimSpace(req.Status),
	}

	request, err := h.requestService.Submit(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingBloodGroup):
			return response.BadRequest(c, "Blood group is required")
		case errors.Is(err, services.ErrMissingRegion):
			return response.BadRequest(c, "Region is required")
		case errors.Is(err, services.ErrInvalidBloodType):
			return response.BadRequest(c, "Invalid blood group")
		case errors.Is(err, services.ErrInvalidRegion):
			return response.BadRequest(c, "Invalid region")
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid request status")
		default:
			return response.InternalServerError(c, "Failed to submit blood request")
		}
	}

	return response.Created(c, "Blood request submitted successfully", request.ToResponse())
}

// List handles role-scoped request listing
// @Summary List blood requests
// @Description List blood requests visible to the caller (admins see all, donors see their region, users see their own)
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	requests, err := h.requestService.List(c.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDonorRegionNotSet):
			return response.BadRequest(c, "Donor region is not set")
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to list blood requests")
		}
	}

	return response.Success(c, "Blood requests retrieved successfully", requests)
}

// UpdateStatus handles request status transitions
// @Summary Update request status
// @Description Move a blood request through its status lifecycle
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body UpdateStatusBody true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id}/status [post]
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID < 1 {
		return response.BadRequest(c, "Invalid request ID")
	}

	var req UpdateStatusBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.requestService.UpdateStatus(c.Context(), uint(requestID), strings.TrimSpace(req.Status), identity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return response.NotFound(c, "Blood request not found")
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid request status")
		default:
			return response.InternalServerError(c, "Failed to update request status")
		}
	}

	return response.Success(c, "Request status updated successfully", request.ToResponse())
}

// identityFromContext builds the caller identity from auth middleware locals
func identityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return domain.Identity{}, false
	}

	email, _ := c.Locals("email").(string)
	role, _ := c.Locals("role").(string)

	return domain.Identity{
		UserID: userID,
		Email:  email,
		Role:   domain.Role(role),
	}, true
}
