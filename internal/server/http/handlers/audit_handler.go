package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/movecrm/backoffice/internal/domain/repository"
	"github.com/movecrm/backoffice/internal/server/http/dto"
)

// AuditHandler serves the edit audit trail.
type AuditHandler struct {
	facade AuditFacade
}

// NewAuditHandler constructs AuditHandler.
func NewAuditHandler(facade AuditFacade) *AuditHandler {
	return &AuditHandler{facade: facade}
}

// List handles GET /api/audit?orderId=&limit=.
func (h *AuditHandler) List(c *gin.Context) {
	var filter repository.AuditFilter

	if raw := c.Query("orderId"); raw != "" {
		orderID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || orderID <= 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.OrderID = orderID
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	entries, err := h.facade.AuditTrail(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAuditEntries(entries))
}
