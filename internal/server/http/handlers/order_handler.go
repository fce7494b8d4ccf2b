package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movecrm/backoffice/internal/server/http/dto"
)

// OrderHandler manages order listing, reload, search and placement.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders. The listing is served from the cached
// collection without touching the order store.
func (h *OrderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromOrderRecords(h.facade.Orders()))
}

// Reload handles POST /api/orders/reload.
func (h *OrderHandler) Reload(c *gin.Context) {
	if err := h.facade.ReloadOrders(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles GET /api/orders/search?customerName=.
func (h *OrderHandler) Search(c *gin.Context) {
	records, err := h.facade.SearchOrders(c.Request.Context(), c.Query("customerName"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOrderRecords(records))
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.NewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.PlaceOrder(c.Request.Context(), req.ToModel()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
