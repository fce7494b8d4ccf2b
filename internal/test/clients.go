package test

import (
	"context"
	"sync"

	"github.com/movecrm/backoffice/internal/adapter/orderstore"
	"github.com/movecrm/backoffice/internal/domain/model"
)

// OrderStoreStub simulates the order store backend in-memory.
type OrderStoreStub struct {
	Records     []model.OrderRecord
	Enumeration []model.ServiceType

	DetailsFn func(ctx context.Context) ([]model.OrderRecord, error)
	UpdateFn  func(ctx context.Context, orderID int64, update orderstore.OrderUpdate) error
	DeleteFn  func(ctx context.Context, orderID int64) error

	mu      sync.Mutex
	Updates []orderstore.OrderUpdate
	Deletes []int64
	Created []model.NewOrder
}

// OrderDetails returns the configured records.
func (s *OrderStoreStub) OrderDetails(ctx context.Context) ([]model.OrderRecord, error) {
	if s.DetailsFn != nil {
		return s.DetailsFn(ctx)
	}
	return s.Records, nil
}

// SearchOrders filters the configured records by customer name.
func (s *OrderStoreStub) SearchOrders(ctx context.Context, customerName string) ([]model.OrderRecord, error) {
	var out []model.OrderRecord
	for _, r := range s.Records {
		if r.CustomerName == customerName {
			out = append(out, r)
		}
	}
	return out, nil
}

// CreateOrder records the placement.
func (s *OrderStoreStub) CreateOrder(ctx context.Context, order model.NewOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Created = append(s.Created, order)
	return nil
}

// UpdateOrder records the update call.
func (s *OrderStoreStub) UpdateOrder(ctx context.Context, orderID int64, update orderstore.OrderUpdate) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, update)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, update)
	return nil
}

// DeleteOrder records the delete call.
func (s *OrderStoreStub) DeleteOrder(ctx context.Context, orderID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deletes = append(s.Deletes, orderID)
	return nil
}

// Customers returns a fixed directory.
func (s *OrderStoreStub) Customers(ctx context.Context) ([]model.Customer, error) {
	return []model.Customer{{CustomerID: 1, CustomerName: "Ola Nordmann"}}, nil
}

// SearchCustomers filters the fixed directory by name.
func (s *OrderStoreStub) SearchCustomers(ctx context.Context, name string) ([]model.Customer, error) {
	customers, _ := s.Customers(ctx)
	var out []model.Customer
	for _, c := range customers {
		if c.CustomerName == name {
			out = append(out, c)
		}
	}
	return out, nil
}

// Consultants returns a fixed directory.
func (s *OrderStoreStub) Consultants(ctx context.Context) ([]model.Consultant, error) {
	return []model.Consultant{{ConsultantID: 1, ConsultantName: "Kari Hansen"}}, nil
}

// ServiceTypes returns the configured enumeration or a default one.
func (s *OrderStoreStub) ServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	if len(s.Enumeration) > 0 {
		return s.Enumeration, nil
	}
	return []model.ServiceType{
		{ID: 1, Label: "MOVING"},
		{ID: 2, Label: "PACKING"},
		{ID: 3, Label: "CLEANING"},
		{ID: 4, Label: "CLEANING_DELUXE"},
	}, nil
}
