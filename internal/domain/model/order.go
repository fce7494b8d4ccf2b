package model

// OrderRecord is one order row as displayed and edited in the backoffice.
// ServiceType carries the human-readable label; the numeric backend
// identifier appears only on the wire when an update is transmitted.
type OrderRecord struct {
	OrderID        int64
	CustomerName   string
	ConsultantName string
	Note           string
	ServiceType    string
	FromAddress    string
	ToAddress      string
	ScheduleDate   string
	Price          float64
}

// NewOrder describes the payload of the order placement form.
type NewOrder struct {
	CustomerName    string  `json:"customerName" validate:"required"`
	CustomerPhone   string  `json:"customerPhone" validate:"required"`
	CustomerEmail   string  `json:"customerEmail" validate:"required,email"`
	ConsultantName  string  `json:"consultantName" validate:"required"`
	ConsultantPhone string  `json:"consultantPhone"`
	ConsultantEmail string  `json:"consultantEmail"`
	ServiceID       int64   `json:"serviceId" validate:"required"`
	FromAddress     string  `json:"fromAddress" validate:"required"`
	ToAddress       string  `json:"toAddress" validate:"required"`
	ScheduleDate    string  `json:"scheduleDate" validate:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
	Note            string  `json:"note"`
}
