package dto

// SetFieldRequest applies one field override to the open edit session.
type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

// StateResponse is the workflow snapshot served to the UI.
type StateResponse struct {
	State          string         `json:"state"`
	EditingOrderID int64          `json:"editingOrderId,omitempty"`
	Draft          *OrderResponse `json:"draft,omitempty"`
	DeleteOrderID  int64          `json:"deleteOrderId,omitempty"`
}
