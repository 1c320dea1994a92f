package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/dto"
	"github.com/finbooks/billing_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recurringHandler handles HTTP requests related to recurring profiles.
type recurringHandler struct {
	profileService    portssvc.RecurringProfileSvcFacade
	recurrenceService portssvc.RecurrenceSvc
}

// newRecurringHandler creates a new recurringHandler.
func newRecurringHandler(ps portssvc.RecurringProfileSvcFacade, rs portssvc.RecurrenceSvc) *recurringHandler {
	return &recurringHandler{
		profileService:    ps,
		recurrenceService: rs,
	}
}

// registerRecurringRoutes registers routes related to recurring invoice and expense profiles.
func registerRecurringRoutes(rg *gin.RouterGroup, profileService portssvc.RecurringProfileSvcFacade, recurrenceService portssvc.RecurrenceSvc) {
	h := newRecurringHandler(profileService, recurrenceService)

	invoices := rg.Group("/recurring-invoices")
	{
		invoices.POST("", h.createInvoiceProfile)
		invoices.GET("/:id", h.getInvoiceProfile)
		invoices.GET("", h.listInvoiceProfiles)
		invoices.PATCH("/:id/status", h.setInvoiceProfileStatus)
	}

	expenses := rg.Group("/recurring-expenses")
	{
		expenses.POST("", h.createExpenseProfile)
		expenses.GET("/:id", h.getExpenseProfile)
		expenses.GET("", h.listExpenseProfiles)
		expenses.PATCH("/:id/status", h.setExpenseProfileStatus)
	}
}

func (h *recurringHandler) toInvoiceProfileResponse(p *domain.RecurringInvoiceProfile) dto.RecurringInvoiceProfileResponse {
	return dto.ToRecurringInvoiceProfileResponse(p, h.recurrenceService.NextDueDate(p.Schedule))
}

func (h *recurringHandler) toExpenseProfileResponse(p *domain.RecurringExpenseProfile) dto.RecurringExpenseProfileResponse {
	return dto.ToRecurringExpenseProfileResponse(p, h.recurrenceService.NextDueDate(p.Schedule))
}

// createInvoiceProfile godoc
// @Summary Create a recurring invoice profile
// @Description Creates a new recurring invoice profile for the logged-in user
// @Tags recurring
// @Accept json
// @Produce json
// @Param profile body dto.CreateRecurringInvoiceProfileRequest true "Profile details"
// @Success 201 {object} dto.RecurringInvoiceProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create profile"
// @Security BearerAuth
// @Router /recurring-invoices [post]
func (h *recurringHandler) createInvoiceProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecurringInvoiceProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.profileService.CreateInvoiceProfile(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create recurring invoice profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create profile"})
		}
		return
	}

	logger.Info("Recurring invoice profile created", slog.String("profile_id", profile.ProfileID))
	c.JSON(http.StatusCreated, h.toInvoiceProfileResponse(profile))
}

// getInvoiceProfile godoc
// @Summary Get a recurring invoice profile by ID
// @Description Retrieves a recurring invoice profile with its line items and next due date
// @Tags recurring
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.RecurringInvoiceProfileResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden (accessing another user's profile)"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve profile"
// @Security BearerAuth
// @Router /recurring-invoices/{id} [get]
func (h *recurringHandler) getInvoiceProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID := c.Param("id")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetInvoiceProfileByID(c.Request.Context(), profileID, loggedInUserID)
	if err != nil {
		h.writeProfileError(c, logger, err, profileID)
		return
	}

	c.JSON(http.StatusOK, h.toInvoiceProfileResponse(profile))
}

// listInvoiceProfiles godoc
// @Summary List recurring invoice profiles
// @Description Retrieves all recurring invoice profiles owned by the logged-in user
// @Tags recurring
// @Produce json
// @Success 200 {array} dto.RecurringInvoiceProfileResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list profiles"
// @Security BearerAuth
// @Router /recurring-invoices [get]
func (h *recurringHandler) listInvoiceProfiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profiles, err := h.profileService.ListInvoiceProfiles(c.Request.Context(), loggedInUserID)
	if err != nil {
		logger.Error("Failed to list recurring invoice profiles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list profiles"})
		return
	}

	responses := make([]dto.RecurringInvoiceProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = h.toInvoiceProfileResponse(&profiles[i])
	}
	c.JSON(http.StatusOK, responses)
}

// setInvoiceProfileStatus godoc
// @Summary Pause or resume a recurring invoice profile
// @Description Sets the status of a recurring invoice profile to ACTIVE or PAUSED
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param status body dto.UpdateProfileStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden (accessing another user's profile)"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Failed to update profile"
// @Security BearerAuth
// @Router /recurring-invoices/{id}/status [patch]
func (h *recurringHandler) setInvoiceProfileStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID := c.Param("id")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.profileService.SetInvoiceProfileStatus(c.Request.Context(), profileID, req.Status, loggedInUserID); err != nil {
		h.writeProfileError(c, logger, err, profileID)
		return
	}

	logger.Info("Recurring invoice profile status updated", slog.String("profile_id", profileID), slog.String("status", string(req.Status)))
	c.Status(http.StatusNoContent)
}

// createExpenseProfile godoc
// @Summary Create a recurring expense profile
// @Description Creates a new recurring expense profile for the logged-in user
// @Tags recurring
// @Accept json
// @Produce json
// @Param profile body dto.CreateRecurringExpenseProfileRequest true "Profile details"
// @Success 201 {object} dto.RecurringExpenseProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create profile"
// @Security BearerAuth
// @Router /recurring-expenses [post]
func (h *recurringHandler) createExpenseProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecurringExpenseProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.profileService.CreateExpenseProfile(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create recurring expense profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create profile"})
		}
		return
	}

	logger.Info("Recurring expense profile created", slog.String("profile_id", profile.ProfileID))
	c.JSON(http.StatusCreated, h.toExpenseProfileResponse(profile))
}

// getExpenseProfile godoc
// @Summary Get a recurring expense profile by ID
// @Description Retrieves a recurring expense profile with its next due date
// @Tags recurring
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.RecurringExpenseProfileResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden (accessing another user's profile)"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve profile"
// @Security BearerAuth
// @Router /recurring-expenses/{id} [get]
func (h *recurringHandler) getExpenseProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID := c.Param("id")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetExpenseProfileByID(c.Request.Context(), profileID, loggedInUserID)
	if err != nil {
		h.writeProfileError(c, logger, err, profileID)
		return
	}

	c.JSON(http.StatusOK, h.toExpenseProfileResponse(profile))
}

// listExpenseProfiles godoc
// @Summary List recurring expense profiles
// @Description Retrieves all recurring expense profiles owned by the logged-in user
// @Tags recurring
// @Produce json
// @Success 200 {array} dto.RecurringExpenseProfileResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list profiles"
// @Security BearerAuth
// @Router /recurring-expenses [get]
func (h *recurringHandler) listExpenseProfiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profiles, err := h.profileService.ListExpenseProfiles(c.Request.Context(), loggedInUserID)
	if err != nil {
		logger.Error("Failed to list recurring expense profiles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list profiles"})
		return
	}

	responses := make([]dto.RecurringExpenseProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = h.toExpenseProfileResponse(&profiles[i])
	}
	c.JSON(http.StatusOK, responses)
}

// setExpenseProfileStatus godoc
// @Summary Pause or resume a recurring expense profile
// @Description Sets the status of a recurring expense profile to ACTIVE or PAUSED
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param status body dto.UpdateProfileStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden (accessing another user's profile)"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Failed to update profile"
// @Security BearerAuth
// @Router /recurring-expenses/{id}/status [patch]
func (h *recurringHandler) setExpenseProfileStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID := c.Param("id")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.profileService.SetExpenseProfileStatus(c.Request.Context(), profileID, req.Status, loggedInUserID); err != nil {
		h.writeProfileError(c, logger, err, profileID)
		return
	}

	logger.Info("Recurring expense profile status updated", slog.String("profile_id", profileID), slog.String("status", string(req.Status)))
	c.Status(http.StatusNoContent)
}

// writeProfileError maps profile service errors to HTTP responses.
func (h *recurringHandler) writeProfileError(c *gin.Context, logger *slog.Logger, err error, profileID string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	} else {
		logger.Error("Recurring profile operation failed", slog.String("error", err.Error()), slog.String("profile_id", profileID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
