package test

import (
	"context"
	"sync"

	"github.com/movecrm/backoffice/internal/domain/model"
	"github.com/movecrm/backoffice/internal/domain/repository"
	"github.com/movecrm/backoffice/internal/editor"
)

// FacadeStub provides controllable behaviour for the full backoffice
// facade surface. Every method delegates to its function override when
// set and falls back to a benign default otherwise.
type FacadeStub struct {
	AuthenticateFn    func(login, password string) (string, error)
	VerifyTokenFn     func(token string) error
	OrdersFn          func() []model.OrderRecord
	ReloadFn          func(ctx context.Context) error
	SearchFn          func(ctx context.Context, customerName string) ([]model.OrderRecord, error)
	PlaceFn           func(ctx context.Context, order model.NewOrder) error
	BeginEditFn       func(orderID int64) error
	SetFieldFn        func(field string, value any) error
	CancelEditFn      func() error
	RequestSaveFn     func() error
	CancelSaveFn      func() error
	ConfirmSaveFn     func(ctx context.Context) (model.OrderRecord, error)
	RequestDeleteFn   func(orderID int64) error
	CancelDeleteFn    func() error
	ConfirmDeleteFn   func(ctx context.Context) (int64, error)
	StateFn           func() editor.Snapshot
	CustomersFn       func(ctx context.Context) ([]model.Customer, error)
	SearchCustomersFn func(ctx context.Context, name string) ([]model.Customer, error)
	ConsultantsFn     func(ctx context.Context) ([]model.Consultant, error)
	ServiceTypesFn    func() []model.ServiceType
	AuditTrailFn      func(ctx context.Context, filter repository.AuditFilter) ([]model.AuditEntry, error)

	mu         sync.Mutex
	SetFields  []FieldCall
	PlacedAll  []model.NewOrder
	BeginEdits []int64
}

// FieldCall records one SetField invocation.
type FieldCall struct {
	Field string
	Value any
}

func (s *FacadeStub) Authenticate(login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(login, password)
	}
	return "token", nil
}

func (s *FacadeStub) VerifyToken(token string) error {
	if s.VerifyTokenFn != nil {
		return s.VerifyTokenFn(token)
	}
	return nil
}

func (s *FacadeStub) Orders() []model.OrderRecord {
	if s.OrdersFn != nil {
		return s.OrdersFn()
	}
	return []model.OrderRecord{{OrderID: 1, CustomerName: "Ola Nordmann", ServiceType: "MOVING"}}
}

func (s *FacadeStub) ReloadOrders(ctx context.Context) error {
	if s.ReloadFn != nil {
		return s.ReloadFn(ctx)
	}
	return nil
}

func (s *FacadeStub) SearchOrders(ctx context.Context, customerName string) ([]model.OrderRecord, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, customerName)
	}
	return []model.OrderRecord{{OrderID: 1, CustomerName: customerName}}, nil
}

func (s *FacadeStub) PlaceOrder(ctx context.Context, order model.NewOrder) error {
	s.mu.Lock()
	s.PlacedAll = append(s.PlacedAll, order)
	s.mu.Unlock()
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, order)
	}
	return nil
}

func (s *FacadeStub) BeginEdit(orderID int64) error {
	s.mu.Lock()
	s.BeginEdits = append(s.BeginEdits, orderID)
	s.mu.Unlock()
	if s.BeginEditFn != nil {
		return s.BeginEditFn(orderID)
	}
	return nil
}

func (s *FacadeStub) SetField(field string, value any) error {
	s.mu.Lock()
	s.SetFields = append(s.SetFields, FieldCall{Field: field, Value: value})
	s.mu.Unlock()
	if s.SetFieldFn != nil {
		return s.SetFieldFn(field, value)
	}
	return nil
}

func (s *FacadeStub) CancelEdit() error {
	if s.CancelEditFn != nil {
		return s.CancelEditFn()
	}
	return nil
}

func (s *FacadeStub) RequestSave() error {
	if s.RequestSaveFn != nil {
		return s.RequestSaveFn()
	}
	return nil
}

func (s *FacadeStub) CancelSave() error {
	if s.CancelSaveFn != nil {
		return s.CancelSaveFn()
	}
	return nil
}

func (s *FacadeStub) ConfirmSave(ctx context.Context) (model.OrderRecord, error) {
	if s.ConfirmSaveFn != nil {
		return s.ConfirmSaveFn(ctx)
	}
	return model.OrderRecord{OrderID: 1}, nil
}

func (s *FacadeStub) RequestDelete(orderID int64) error {
	if s.RequestDeleteFn != nil {
		return s.RequestDeleteFn(orderID)
	}
	return nil
}

func (s *FacadeStub) CancelDelete() error {
	if s.CancelDeleteFn != nil {
		return s.CancelDeleteFn()
	}
	return nil
}

func (s *FacadeStub) ConfirmDelete(ctx context.Context) (int64, error) {
	if s.ConfirmDeleteFn != nil {
		return s.ConfirmDeleteFn(ctx)
	}
	return 1, nil
}

func (s *FacadeStub) WorkflowState() editor.Snapshot {
	if s.StateFn != nil {
		return s.StateFn()
	}
	return editor.Snapshot{State: editor.StateViewing}
}

func (s *FacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{{CustomerID: 1, CustomerName: "Ola Nordmann"}}, nil
}

func (s *FacadeStub) SearchCustomers(ctx context.Context, name string) ([]model.Customer, error) {
	if s.SearchCustomersFn != nil {
		return s.SearchCustomersFn(ctx, name)
	}
	return []model.Customer{{CustomerID: 1, CustomerName: name}}, nil
}

func (s *FacadeStub) Consultants(ctx context.Context) ([]model.Consultant, error) {
	if s.ConsultantsFn != nil {
		return s.ConsultantsFn(ctx)
	}
	return []model.Consultant{{ConsultantID: 1, ConsultantName: "Kari Hansen"}}, nil
}

func (s *FacadeStub) ServiceTypes() []model.ServiceType {
	if s.ServiceTypesFn != nil {
		return s.ServiceTypesFn()
	}
	return []model.ServiceType{{ID: 1, Label: "MOVING"}}
}

func (s *FacadeStub) AuditTrail(ctx context.Context, filter repository.AuditFilter) ([]model.AuditEntry, error) {
	if s.AuditTrailFn != nil {
		return s.AuditTrailFn(ctx, filter)
	}
	return nil, nil
}
