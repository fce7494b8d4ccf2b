package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/movecrm/backoffice/internal/domain/errors"
	"github.com/movecrm/backoffice/internal/server/http/dto"
)

// EditHandler drives the edit workflow endpoints. All state lives in
// the workflow; handlers only translate between HTTP and its triggers.
type EditHandler struct {
	facade EditFacade
}

// NewEditHandler constructs EditHandler.
func NewEditHandler(facade EditFacade) *EditHandler {
	return &EditHandler{facade: facade}
}

// Begin handles POST /api/orders/:orderId/edit.
func (h *EditHandler) Begin(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	if err := h.facade.BeginEdit(orderID); err != nil {
		writeError(c, err)
		return
	}
	h.State(c)
}

// SetField handles PATCH /api/edit.
func (h *EditHandler) SetField(c *gin.Context) {
	var req dto.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.SetField(req.Field, req.Value); err != nil {
		writeError(c, err)
		return
	}
	h.State(c)
}

// CancelEdit handles DELETE /api/edit.
func (h *EditHandler) CancelEdit(c *gin.Context) {
	if err := h.facade.CancelEdit(); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestSave handles POST /api/edit/save.
func (h *EditHandler) RequestSave(c *gin.Context) {
	if err := h.facade.RequestSave(); err != nil {
		writeError(c, err)
		return
	}
	h.State(c)
}

// CancelSave handles DELETE /api/edit/save.
func (h *EditHandler) CancelSave(c *gin.Context) {
	if err := h.facade.CancelSave(); err != nil {
		writeError(c, err)
		return
	}
	h.State(c)
}

// ConfirmSave handles POST /api/edit/save/confirm.
func (h *EditHandler) ConfirmSave(c *gin.Context) {
	record, err := h.facade.ConfirmSave(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response := dto.FromOrderRecord(record)
	c.JSON(http.StatusOK, response)
}

// RequestDelete handles POST /api/orders/:orderId/delete.
func (h *EditHandler) RequestDelete(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	if err := h.facade.RequestDelete(orderID); err != nil {
		writeError(c, err)
		return
	}
	h.State(c)
}

// CancelDelete handles DELETE /api/orders/:orderId/delete.
func (h *EditHandler) CancelDelete(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	if h.facade.WorkflowState().DeleteOrderID != orderID {
		writeError(c, domainErrors.ErrNoPendingAction)
		return
	}
	if err := h.facade.CancelDelete(); err != nil {
		writeError(c, err)
		return
	}
	h.State(c)
}

// ConfirmDelete handles POST /api/orders/:orderId/delete/confirm.
func (h *EditHandler) ConfirmDelete(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	if h.facade.WorkflowState().DeleteOrderID != orderID {
		writeError(c, domainErrors.ErrNoPendingAction)
		return
	}

	deleted, err := h.facade.ConfirmDelete(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderId": deleted})
}

// State handles GET /api/state.
func (h *EditHandler) State(c *gin.Context) {
	snap := h.facade.WorkflowState()
	response := dto.StateResponse{
		State:          string(snap.State),
		EditingOrderID: snap.EditingOrderID,
		DeleteOrderID:  snap.DeleteOrderID,
	}
	if snap.Draft != nil {
		draft := dto.FromOrderRecord(*snap.Draft)
		response.Draft = &draft
	}
	c.JSON(http.StatusOK, response)
}

func orderIDParam(c *gin.Context) (int64, bool) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil || orderID <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return orderID, true
}
