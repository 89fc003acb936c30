package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
	"github.com/parishworks/parish_management_app/internal/middleware"
)

// inventoryHandler handles HTTP requests for physical asset tracking.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// registerInventoryRoutes registers routes related to inventory items.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: inventoryService}

	items := rg.Group("/inventory")
	{
		items.POST("", h.createItem)
		items.GET("/:id", h.getItem)
		items.GET("", h.listItems)
		items.PUT("/:id", h.updateItem)
		items.POST("/:id/adjust-quantity", h.adjustQuantity)
		items.DELETE("/:id", h.deleteItem)
	}
}

// createItem godoc
// @Summary Register an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body dto.CreateInventoryItemRequest true "Item details"
// @Success 201 {object} domain.InventoryItem
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create inventory item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// getItem godoc
// @Summary Get an inventory item by ID
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} domain.InventoryItem
// @Security BearerAuth
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	item, err := h.inventoryService.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve inventory item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// listItems godoc
// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.ListInventoryResponse
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := pageParams(c)
	items, err := h.inventoryService.ListItems(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list inventory items")
		return
	}
	c.JSON(http.StatusOK, dto.ListInventoryResponse{Items: items})
}

// updateItem godoc
// @Summary Update an inventory item
// @Description Edits descriptive fields. Quantity changes go through the adjust-quantity endpoint.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} domain.InventoryItem
// @Security BearerAuth
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update inventory item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// adjustQuantity godoc
// @Summary Adjust an item's quantity
// @Description Applies a signed delta to the stored quantity. Adjustments that would take the quantity below zero are rejected.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param adjustment body dto.AdjustQuantityRequest true "Signed quantity delta"
// @Success 200 {object} domain.InventoryItem
// @Failure 400 {object} map[string]string "Delta would make quantity negative"
// @Security BearerAuth
// @Router /inventory/{id}/adjust-quantity [post]
func (h *inventoryHandler) adjustQuantity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	item, err := h.inventoryService.AdjustQuantity(c.Request.Context(), c.Param("id"), req.Delta, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to adjust quantity")
		return
	}
	logger.Info("Inventory quantity adjusted", slog.String("item_id", item.ItemID), slog.Int("quantity", item.Quantity))
	c.JSON(http.StatusOK, item)
}

// deleteItem godoc
// @Summary Delete an inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /inventory/{id} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}
	if err := h.inventoryService.DeleteItem(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete inventory item")
		return
	}
	c.Status(http.StatusNoContent)
}
