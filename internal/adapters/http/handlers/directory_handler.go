package handlers

import (
	"strings"

	"bloodbridge/internal/adapters/persistence/repositories"
	"bloodbridge/internal/core/services"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DirectoryHandler handles donor search, inventory search, and the demand table
type DirectoryHandler struct {
	directoryService *services.DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// SearchDonors handles donor directory search
// @Summary Search donors
// @Description Search donor accounts by blood type, name, and region, annotated with availability
// @Tags Directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param blood_type query string false "Blood type filter"
// @Param name query string false "Name substring filter"
// @Param region query string false "Region filter"
// @Success 200 {object} response.Response
// @Router /donors/search [get]
func (h *DirectoryHandler) SearchDonors(c *fiber.Ctx) error {
	filter := repositories.DonorFilter{
		BloodType: strings.TrimSpace(c.Query("blood_type")),
		Name:      strings.TrimSpace(c.Query("name")),
		Region:    strings.TrimSpace(c.Query("region")),
	}

	donors, err := h.directoryService.SearchDonors(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to search donors")
	}

	return response.Success(c, "Donors retrieved successfully", donors)
}

// SearchInventory handles bank and inventory search
// @Summary Search blood inventory
// @Description Search partner banks by region and the inventory ledger by blood type
// @Tags Directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param blood_type query string false "Blood type filter"
// @Param region query string false "Region filter (substring match against bank location)"
// @Success 200 {object} response.Response
// @Router /inventory/search [get]
func (h *DirectoryHandler) SearchInventory(c *fiber.Ctx) error {
	bloodType := strings.TrimSpace(c.Query("blood_type"))
	region := strings.TrimSpace(c.Query("region"))

	result, err := h.directoryService.SearchInventory(c.Context(), bloodType, region)
	if err != nil {
		return response.InternalServerError(c, "Failed to search inventory")
	}

	return response.Success(c, "Inventory retrieved successfully", result)
}

// DemandTable returns the static blood demand reference
// @Summary Get blood demand table
// @Description Get the static per-blood-type demand levels
// @Tags Directory
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /inventory/demand [get]
func (h *DirectoryHandler) DemandTable(c *fiber.Ctx) error {
	return response.Success(c, "Demand table retrieved successfully", h.directoryService.DemandTable())
}
