package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/dto"
	"github.com/finbooks/billing_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogItemHandler handles HTTP requests related to catalog items.
type catalogItemHandler struct {
	catalogService portssvc.CatalogItemSvcFacade
}

// newCatalogItemHandler creates a new catalogItemHandler.
func newCatalogItemHandler(cs portssvc.CatalogItemSvcFacade) *catalogItemHandler {
	return &catalogItemHandler{
		catalogService: cs,
	}
}

// registerCatalogItemRoutes registers routes related to catalog items.
func registerCatalogItemRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogItemSvcFacade) {
	h := newCatalogItemHandler(catalogService)

	items := rg.Group("/catalog-items")
	{
		items.POST("", h.createCatalogItem)
		items.GET("/:id", h.getCatalogItem)
		items.GET("", h.listCatalogItems)
	}
}

// createCatalogItem godoc
// @Summary Create a new catalog item
// @Description Creates a new product or service in the logged-in user's catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Param item body dto.CreateCatalogItemRequest true "Catalog item details"
// @Success 201 {object} dto.CatalogItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create catalog item"
// @Security BearerAuth
// @Router /catalog-items [post]
func (h *catalogItemHandler) createCatalogItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCatalogItemRequest
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

	newItem, err := h.catalogService.CreateCatalogItem(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create catalog item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create catalog item"})
		}
		return
	}

	logger.Info("Catalog item created successfully", slog.String("item_id", newItem.ItemID))
	c.JSON(http.StatusCreated, dto.ToCatalogItemResponse(newItem))
}

// getCatalogItem godoc
// @Summary Get a catalog item by ID
// @Description Retrieves details for a specific catalog item by its ID
// @Tags catalog
// @Produce json
// @Param id path string true "Catalog item ID"
// @Success 200 {object} dto.CatalogItemResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden (accessing another user's item)"
// @Failure 404 {object} ErrorResponse "Catalog item not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve catalog item"
// @Security BearerAuth
// @Router /catalog-items/{id} [get]
func (h *catalogItemHandler) getCatalogItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.catalogService.GetCatalogItemByID(c.Request.Context(), itemID, loggedInUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Catalog item not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		} else {
			logger.Error("Failed to get catalog item", slog.String("error", err.Error()), slog.String("item_id", itemID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve catalog item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogItemResponse(item))
}

// listCatalogItems godoc
// @Summary List catalog items
// @Description Retrieves all catalog items owned by the logged-in user
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.CatalogItemResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list catalog items"
// @Security BearerAuth
// @Router /catalog-items [get]
func (h *catalogItemHandler) listCatalogItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.catalogService.ListCatalogItems(c.Request.Context(), loggedInUserID)
	if err != nil {
		logger.Error("Failed to list catalog items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list catalog items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogItemResponses(items))
}
