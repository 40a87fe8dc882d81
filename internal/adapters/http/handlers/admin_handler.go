package handlers

import (
	"errors"
	"strings"

	"bloodbridge/internal/core/services"
	"bloodbridge/internal/pkg/pagination"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin-only endpoints: user management, the bank
// directory, inventory upserts, and broadcasts.
type AdminHandler struct {
	userService         *services.UserService
	directoryService    *services.DirectoryService
	notificationService *services.NotificationService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	userService *services.UserService,
	directoryService *services.DirectoryService,
	notificationService *services.NotificationService,
) *AdminHandler {
	return &AdminHandler{
		userService:         userService,
		directoryService:    directoryService,
		notificationService: notificationService,
	}
}

// UpdateUserBody represents an admin edit of a user
type UpdateUserBody struct {
	Role   *string `json:"role"`
	Region *string `json:"region"`
}

// BankBody represents a partner bank create or update
type BankBody struct {
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	Contact        string         `json:"contact"`
	AvailableUnits map[string]int `json:"available_units"`
}

// InventoryBody represents an inventory upsert
type InventoryBody struct {
	BloodType      string `json:"blood_type"`
	AvailableUnits int    `json:"available_units"`
	Status         string `json:"status"`
}

// BroadcastBody represents an admin broadcast
type BroadcastBody struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Role    string `json:"role"`
	Region  string `json:"region"`
}

// ListUsers handles paginated user listing
// @Summary List users
// @Description List all users with pagination
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.userService.ListUsers(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully",
		pagination.NewResponse(result.Users, params, result.Total))
}

// GetUser handles single user retrieval
// @Summary Get user
// @Description Get a user by ID
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.GetUserByID(c.Context(), uint(userID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFoundSvc):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to get user")
		}
	}

	return response.Success(c, "User retrieved successfully", user)
}

// UpdateUser handles admin edits of a user's role and region
// @Summary Update user
// @Description Update a user's role or region
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body UpdateUserBody true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req UpdateUserBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateUserByAdminInput{
		Role:   req.Role,
		Region: req.Region,
	}

	user, err := h.userService.UpdateUserByAdmin(c.Context(), uint(userID), adminID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFoundSvc):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrCannotChangeOwnRole):
			return response.BadRequest(c, "Cannot change your own role")
		case errors.Is(err, services.ErrInvalidRole):
			return response.BadRequest(c, "Invalid role")
		case errors.Is(err, services.ErrInvalidRegion):
			return response.BadRequest(c, "Invalid region")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, "User updated successfully", user)
}

// DeleteUser handles user deletion
// @Summary Delete user
// @Description Delete a user account and its donor profile
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(c.Context(), uint(userID), adminID); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFoundSvc):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrCannotDeleteSelf):
			return response.BadRequest(c, "Cannot delete your own account")
		default:
			return response.InternalServerError(c, "Failed to delete user")
		}
	}

	return response.Success(c, "User deleted successfully", nil)
}

// VerifyDonor handles donor verification
// @Summary Verify donor
// @Description Mark a donor as verified and raise their reputation
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donor user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/donors/{id}/verify [post]
func (h *AdminHandler) VerifyDonor(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	donor, err := h.userService.VerifyDonor(c.Context(), uint(userID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDonorProfileNotFound):
			return response.NotFound(c, "Donor profile not found")
		default:
			return response.InternalServerError(c, "Failed to verify donor")
		}
	}

	return response.Success(c, "Donor verified successfully", donor)
}

// CreateBank handles partner bank creation
// @Summary Create blood bank
// @Description Add a partner blood bank to the directory
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BankBody true "Bank data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/banks [post]
func (h *AdminHandler) CreateBank(c *fiber.Ctx) error {
	var req BankBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.BankInput{
		Name:           strings.TrimSpace(req.Name),
		Location:       strings.TrimSpace(req.Location),
		Contact:        strings.TrimSpace(req.Contact),
		AvailableUnits: req.AvailableUnits,
	}

	bank, err := h.directoryService.CreateBank(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingBankName):
			return response.BadRequest(c, "Bank name is required")
		case errors.Is(err, services.ErrBankAlreadyExists):
			return response.Conflict(c, "Blood bank name already exists")
		default:
			return response.InternalServerError(c, "Failed to create blood bank")
		}
	}

	return response.Created(c, "Blood bank created successfully", bank)
}

// ListBanks handles partner bank listing
// @Summary List blood banks
// @Description List all partner blood banks
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/banks [get]
func (h *AdminHandler) ListBanks(c *fiber.Ctx) error {
	banks, err := h.directoryService.ListBanks(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list blood banks")
	}

	return response.Success(c, "Blood banks retrieved successfully", banks)
}

// UpdateBank handles partner bank updates
// @Summary Update blood bank
// @Description Update a partner blood bank's directory entry
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bank ID"
// @Param body body BankBody true "Bank data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/banks/{id} [put]
func (h *AdminHandler) UpdateBank(c *fiber.Ctx) error {
	bankID, err := c.ParamsInt("id")
	if err != nil || bankID < 1 {
		return response.BadRequest(c, "Invalid bank ID")
	}

	var req BankBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.BankInput{
		Name:           strings.TrimSpace(req.Name),
		Location:       strings.TrimSpace(req.Location),
		Contact:        strings.TrimSpace(req.Contact),
		AvailableUnits: req.AvailableUnits,
	}

	bank, err := h.directoryService.UpdateBank(c.Context(), uint(bankID), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBankNotFound):
			return response.NotFound(c, "Blood bank not found")
		case errors.Is(err, services.ErrBankAlreadyExists):
			return response.Conflict(c, "Blood bank name already exists")
		default:
			return response.InternalServerError(c, "Failed to update blood bank")
		}
	}

	return response.Success(c, "Blood bank updated successfully", bank)
}

// DeleteBank handles partner bank deletion
// @Summary Delete blood bank
// @Description Remove a partner blood bank from the directory
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bank ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/banks/{id} [delete]
func (h *AdminHandler) DeleteBank(c *fiber.Ctx) error {
	bankID, err := c.ParamsInt("id")
	if err != nil || bankID < 1 {
		return response.BadRequest(c, "Invalid bank ID")
	}

	if err := h.directoryService.DeleteBank(c.Context(), uint(bankID)); err != nil {
		switch {
		case errors.Is(err, services.ErrBankNotFound):
			return response.NotFound(c, "Blood bank not found")
		default:
			return response.InternalServerError(c, "Failed to delete blood bank")
		}
	}

	return response.Success(c, "Blood bank deleted successfully", nil)
}

// UpsertInventory handles inventory level overwrites
// @Summary Upsert inventory
// @Description Create or overwrite the inventory row for a blood type
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body InventoryBody true "Inventory data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/inventory [put]
func (h *AdminHandler) UpsertInventory(c *fiber.Ctx) error {
	var req InventoryBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.InventoryUpsertInput{
		BloodType:      strings.TrimSpace(req.BloodType),
		AvailableUnits: req.AvailableUnits,
		Status:         strings.TrimSpace(req.Status),
	}

	inventory, err := h.directoryService.UpsertInventory(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBloodType):
			return response.BadRequest(c, "Invalid blood type")
		case errors.Is(err, services.ErrInvalidInventoryStatus):
			return response.BadRequest(c, "Invalid inventory status")
		default:
			return response.InternalServerError(c, "Failed to update inventory")
		}
	}

	return response.Success(c, "Inventory updated successfully", inventory)
}

// Broadcast handles admin notification broadcasts
// @Summary Broadcast notification
// @Description Send a notification to a role (or all roles), optionally scoped to a region
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BroadcastBody true "Broadcast data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/notifications/broadcast [post]
func (h *AdminHandler) Broadcast(c *fiber.Ctx) error {
	var req BroadcastBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.BroadcastInput{
		Title:   strings.TrimSpace(req.Title),
		Message: strings.TrimSpace(req.Message),
		Role:    strings.TrimSpace(req.Role),
		Region:  strings.TrimSpace(req.Region),
	}

	notification, err := h.notificationService.Broadcast(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingTitle):
			return response.BadRequest(c, "Title is required")
		case errors.Is(err, services.ErrMissingMessage):
			return response.BadRequest(c, "Message is required")
		case errors.Is(err, services.ErrInvalidAudience):
			return response.BadRequest(c, "Invalid notification audience")
		case errors.Is(err, services.ErrInvalidRegion):
			return response.BadRequest(c, "Invalid region")
		default:
			return response.InternalServerError(c, "Failed to send broadcast")
		}
	}

	return response.Created(c, "Broadcast sent successfully", notification)
}
