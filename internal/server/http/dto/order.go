package dto

import "github.com/movecrm/backoffice/internal/domain/model"

// OrderResponse is one order row in its display form. Field names
// follow the order store wire format.
type OrderResponse struct {
	OrderID        int64   `json:"orderId"`
	CustomerName   string  `json:"customerName"`
	ConsultantName string  `json:"consultantName"`
	Note           string  `json:"note"`
	ServiceType    string  `json:"serviceType"`
	FromAddress    string  `json:"fromAddress"`
	ToAddress      string  `json:"toAddress"`
	ScheduleDate   string  `json:"scheduleDate"`
	Price          float64 `json:"price"`
}

// FromOrderRecord converts a domain record to its response form.
func FromOrderRecord(record model.OrderRecord) OrderResponse {
	return OrderResponse{
		OrderID:        record.OrderID,
		CustomerName:   record.CustomerName,
		ConsultantName: record.ConsultantName,
		Note:           record.Note,
		ServiceType:    record.ServiceType,
		FromAddress:    record.FromAddress,
		ToAddress:      record.ToAddress,
		ScheduleDate:   record.ScheduleDate,
		Price:          record.Price,
	}
}

// FromOrderRecords converts a record slice, never returning nil so an
// empty listing encodes as [].
func FromOrderRecords(records []model.OrderRecord) []OrderResponse {
	out := make([]OrderResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromOrderRecord(r))
	}
	return out
}

// NewOrderRequest is the order placement form payload.
type NewOrderRequest struct {
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   string  `json:"customerEmail"`
	ConsultantName  string  `json:"consultantName"`
	ConsultantPhone string  `json:"consultantPhone"`
	ConsultantEmail string  `json:"consultantEmail"`
	ServiceID       int64   `json:"serviceId"`
	FromAddress     string  `json:"fromAddress"`
	ToAddress       string  `json:"toAddress"`
	ScheduleDate    string  `json:"scheduleDate"`
	Price           float64 `json:"price"`
	Note            string  `json:"note"`
}

// ToModel converts the request to the domain placement payload.
func (r NewOrderRequest) ToModel() model.NewOrder {
	return model.NewOrder{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		ConsultantName:  r.ConsultantName,
		ConsultantPhone: r.ConsultantPhone,
		ConsultantEmail: r.ConsultantEmail,
		ServiceID:       r.ServiceID,
		FromAddress:     r.FromAddress,
		ToAddress:       r.ToAddress,
		ScheduleDate:    r.ScheduleDate,
		Price:           r.Price,
		Note:            r.Note,
	}
}
