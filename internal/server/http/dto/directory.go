package dto

import "github.com/movecrm/backoffice/internal/domain/model"

// CustomerResponse is one customer directory row.
type CustomerResponse struct {
	CustomerID    int64  `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
}

// ConsultantResponse is one consultant directory row.
type ConsultantResponse struct {
	ConsultantID    int64  `json:"consultantId"`
	ConsultantName  string `json:"consultantName"`
	ConsultantPhone string `json:"consultantPhone"`
	ConsultantEmail string `json:"consultantEmail"`
}

// ServiceTypeResponse is one entry of the service enumeration.
type ServiceTypeResponse struct {
	ServiceID   int64  `json:"serviceId"`
	ServiceName string `json:"serviceName"`
}

// FromCustomers converts the customer directory.
func FromCustomers(customers []model.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerResponse{
			CustomerID:    c.CustomerID,
			CustomerName:  c.CustomerName,
			CustomerPhone: c.CustomerPhone,
			CustomerEmail: c.CustomerEmail,
		})
	}
	return out
}

// FromConsultants converts the consultant directory.
func FromConsultants(consultants []model.Consultant) []ConsultantResponse {
	out := make([]ConsultantResponse, 0, len(consultants))
	for _, c := range consultants {
		out = append(out, ConsultantResponse{
			ConsultantID:    c.ConsultantID,
			ConsultantName:  c.ConsultantName,
			ConsultantPhone: c.ConsultantPhone,
			ConsultantEmail: c.ConsultantEmail,
		})
	}
	return out
}

// FromServiceTypes converts the service enumeration.
func FromServiceTypes(types []model.ServiceType) []ServiceTypeResponse {
	out := make([]ServiceTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, ServiceTypeResponse{ServiceID: t.ID, ServiceName: t.Label})
	}
	return out
}
