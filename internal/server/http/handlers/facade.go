package handlers

import (
	"context"

	"github.com/movecrm/backoffice/internal/domain/model"
	"github.com/movecrm/backoffice/internal/domain/repository"
	"github.com/movecrm/backoffice/internal/editor"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Authenticate(login, password string) (string, error)
	VerifyToken(token string) error
}

// OrderFacade encapsulates the order listing, search and placement
// operations exposed via HTTP.
type OrderFacade interface {
	Orders() []model.OrderRecord
	ReloadOrders(ctx context.Context) error
	SearchOrders(ctx context.Context, customerName string) ([]model.OrderRecord, error)
	PlaceOrder(ctx context.Context, order model.NewOrder) error
}

// EditFacade drives the edit workflow.
type EditFacade interface {
	BeginEdit(orderID int64) error
	SetField(field string, value any) error
	CancelEdit() error
	RequestSave() error
	CancelSave() error
	ConfirmSave(ctx context.Context) (model.OrderRecord, error)
	RequestDelete(orderID int64) error
	CancelDelete() error
	ConfirmDelete(ctx context.Context) (int64, error)
	WorkflowState() editor.Snapshot
}

// DirectoryFacade serves the reference listings.
type DirectoryFacade interface {
	Customers(ctx context.Context) ([]model.Customer, error)
	SearchCustomers(ctx context.Context, name string) ([]model.Customer, error)
	Consultants(ctx context.Context) ([]model.Consultant, error)
	ServiceTypes() []model.ServiceType
}

// AuditFacade serves the audit trail.
type AuditFacade interface {
	AuditTrail(ctx context.Context, filter repository.AuditFilter) ([]model.AuditEntry, error)
}

// BackofficeFacade aggregates the full set of operations used across handlers.
type BackofficeFacade interface {
	AuthFacade
	OrderFacade
	EditFacade
	DirectoryFacade
	AuditFacade
}
