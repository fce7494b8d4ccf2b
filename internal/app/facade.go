package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/movecrm/backoffice/internal/adapter/events"
	"github.com/movecrm/backoffice/internal/domain/model"
	"github.com/movecrm/backoffice/internal/domain/repository"
	"github.com/movecrm/backoffice/internal/editor"
	"github.com/movecrm/backoffice/internal/usecase"
)

// BackofficeFacade aggregates the use cases and the edit workflow
// behind one surface for the HTTP layer and the background refresher.
// Audit recording and event publishing happen here, after the workflow
// has confirmed a mutation against the order store; their failures are
// logged but never surfaced, the remote mutation already happened.
type BackofficeFacade struct {
	auth      *usecase.AuthUseCase
	orders    *usecase.OrderUseCase
	directory *usecase.DirectoryUseCase
	workflow  *editor.Workflow
	audit     repository.AuditLog
	events    events.Publisher
	logger    *slog.Logger
}

// NewBackofficeFacade constructs BackofficeFacade.
func NewBackofficeFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	directory *usecase.DirectoryUseCase,
	workflow *editor.Workflow,
	audit repository.AuditLog,
	publisher events.Publisher,
	logger *slog.Logger,
) *BackofficeFacade {
	return &BackofficeFacade{
		auth:      auth,
		orders:    orders,
		directory: directory,
		workflow:  workflow,
		audit:     audit,
		events:    publisher,
		logger:    logger,
	}
}

func (f *BackofficeFacade) Authenticate(login, password string) (string, error) {
	return f.auth.Authenticate(login, password)
}

func (f *BackofficeFacade) VerifyToken(token string) error {
	return f.auth.VerifyToken(token)
}

func (f *BackofficeFacade) Orders() []model.OrderRecord {
	return f.orders.List()
}

func (f *BackofficeFacade) ReloadOrders(ctx context.Context) error {
	return f.orders.Reload(ctx)
}

func (f *BackofficeFacade) SearchOrders(ctx context.Context, customerName string) ([]model.OrderRecord, error) {
	return f.orders.Search(ctx, customerName)
}

func (f *BackofficeFacade) PlaceOrder(ctx context.Context, order model.NewOrder) error {
	return f.orders.Place(ctx, order)
}

func (f *BackofficeFacade) BeginEdit(orderID int64) error {
	return f.workflow.BeginEdit(orderID)
}

func (f *BackofficeFacade) SetField(field string, value any) error {
	return f.workflow.SetField(field, value)
}

func (f *BackofficeFacade) CancelEdit() error {
	return f.workflow.CancelEdit()
}

func (f *BackofficeFacade) RequestSave() error {
	return f.workflow.RequestSave()
}

func (f *BackofficeFacade) CancelSave() error {
	return f.workflow.CancelSave()
}

// ConfirmSave commits the draft through the workflow, then records the
// audit entry and publishes the update event.
func (f *BackofficeFacade) ConfirmSave(ctx context.Context) (model.OrderRecord, error) {
	record, err := f.workflow.ConfirmSave(ctx)
	if err != nil {
		return model.OrderRecord{}, err
	}

	f.recordAudit(ctx, record.OrderID, model.AuditActionSave, record)
	if err := f.events.OrderUpdated(ctx, record); err != nil {
		f.logger.Error("publish order update failed", slog.Int64("order_id", record.OrderID), slog.String("error", err.Error()))
	}
	return record, nil
}

func (f *BackofficeFacade) RequestDelete(orderID int64) error {
	return f.workflow.RequestDelete(orderID)
}

func (f *BackofficeFacade) CancelDelete() error {
	return f.workflow.CancelDelete()
}

// ConfirmDelete commits the deletion through the workflow, then records
// the audit entry and publishes the deletion event.
func (f *BackofficeFacade) ConfirmDelete(ctx context.Context) (int64, error) {
	orderID, err := f.workflow.ConfirmDelete(ctx)
	if err != nil {
		return 0, err
	}

	f.recordAudit(ctx, orderID, model.AuditActionDelete, nil)
	if err := f.events.OrderDeleted(ctx, orderID); err != nil {
		f.logger.Error("publish order delete failed", slog.Int64("order_id", orderID), slog.String("error", err.Error()))
	}
	return orderID, nil
}

func (f *BackofficeFacade) WorkflowState() editor.Snapshot {
	return f.workflow.Snapshot()
}

func (f *BackofficeFacade) Idle() bool {
	return f.workflow.Idle()
}

func (f *BackofficeFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.directory.Customers(ctx)
}

func (f *BackofficeFacade) SearchCustomers(ctx context.Context, name string) ([]model.Customer, error) {
	return f.directory.SearchCustomers(ctx, name)
}

func (f *BackofficeFacade) Consultants(ctx context.Context) ([]model.Consultant, error) {
	return f.directory.Consultants(ctx)
}

func (f *BackofficeFacade) ServiceTypes() []model.ServiceType {
	return f.directory.ServiceTypes()
}

func (f *BackofficeFacade) AuditTrail(ctx context.Context, filter repository.AuditFilter) ([]model.AuditEntry, error) {
	return f.audit.List(ctx, filter)
}

func (f *BackofficeFacade) recordAudit(ctx context.Context, orderID int64, action string, record any) {
	payload := []byte(`{}`)
	if record != nil {
		encoded, err := json.Marshal(record)
		if err != nil {
			f.logger.Error("encode audit payload failed", slog.String("error", err.Error()))
		} else {
			payload = encoded
		}
	} else if action == model.AuditActionDelete {
		payload = []byte(`{"orderId":` + strconv.FormatInt(orderID, 10) + `}`)
	}

	if _, err := f.audit.Record(ctx, model.AuditEntry{OrderID: orderID, Action: action, Payload: payload}); err != nil {
		f.logger.Error("record audit entry failed", slog.Int64("order_id", orderID), slog.String("error", err.Error()))
	}
}
