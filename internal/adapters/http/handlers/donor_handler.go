package handlers

import (
	"errors"

	"bloodbridge/internal/core/services"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DonorHandler handles donor self-service endpoints
type DonorHandler struct {
	donorService *services.DonorService
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(donorService *services.DonorService) *DonorHandler {
	return &DonorHandler{
		donorService: donorService,
	}
}

// RecordDonationBody represents a donation record submission. Units is a
// pointer so an omitted field can default to a single unit.
type RecordDonationBody struct {
	Units *int   `json:"units"`
	Notes string `json:"notes"`
}

// SetAvailabilityBody represents an availability toggle
type SetAvailabilityBody struct {
	Available *bool `json:"available"`
}

// RecordDonation handles donation recording
// @Summary Record a donation
// @Description Record a donation and credit the inventory for the donor's blood type
// @Tags Donors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RecordDonationBody true "Donation data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/donate [post]
func (h *DonorHandler) RecordDonation(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req RecordDonationBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	units := 1
	if req.Units != nil {
		units = *req.Units
	}

	result, err := h.donorService.RecordDonation(c.Context(), userID, units, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUnits):
			return response.BadRequest(c, "Units must be at least 1")
		case errors.Is(err, services.ErrDonorProfileNotFound):
			return response.NotFound(c, "Donor profile not found")
		default:
			return response.InternalServerError(c, "Failed to record donation")
		}
	}

	return response.Created(c, "Donation recorded successfully", result)
}

// SetAvailability handles the donor availability toggle
// @Summary Set donor availability
// @Description Toggle whether the donor is available for donation
// @Tags Donors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SetAvailabilityBody true "Availability flag"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/availability [put]
func (h *DonorHandler) SetAvailability(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req SetAvailabilityBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Available == nil {
		return response.BadRequest(c, "Available flag is required")
	}

	donor, err := h.donorService.SetAvailability(c.Context(), userID, *req.Available)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDonorProfileNotFound):
			return response.NotFound(c, "Donor profile not found")
		default:
			return response.InternalServerError(c, "Failed to update availability")
		}
	}

	return response.Success(c, "Availability updated successfully", donor)
}

// GetHistory handles donation history retrieval
// @Summary Get donation history
// @Description List the donor's recorded donations oldest first
// @Tags Donors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/history [get]
func (h *DonorHandler) GetHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	entries, err := h.donorService.GetHistory(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDonorProfileNotFound):
			return response.NotFound(c, "Donor profile not found")
		default:
			return response.InternalServerError(c, "Failed to load donation history")
		}
	}

	return response.Success(c, "Donation history retrieved successfully", entries)
}
