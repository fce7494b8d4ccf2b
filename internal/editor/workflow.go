package editor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/movecrm/backoffice/internal/adapter/orderstore"
	"github.com/movecrm/backoffice/internal/cache"
	domainErrors "github.com/movecrm/backoffice/internal/domain/errors"
	"github.com/movecrm/backoffice/internal/domain/model"
	"github.com/movecrm/backoffice/internal/servicetype"
)

// State names the phases of the save/delete workflow.
type State string

const (
	StateViewing          State = "VIEWING"
	StateEditing          State = "EDITING"
	StateConfirmingSave   State = "CONFIRMING_SAVE"
	StateSaving           State = "SAVING"
	StateConfirmingDelete State = "CONFIRMING_DELETE"
	StateDeleting         State = "DELETING"
)

// Snapshot is a point-in-time view of the workflow for the UI.
type Snapshot struct {
	State          State
	EditingOrderID int64
	Draft          *model.OrderRecord
	DeleteOrderID  int64
}

// Mutator is the slice of the order store the workflow writes through.
type Mutator interface {
	UpdateOrder(ctx context.Context, orderID int64, update orderstore.OrderUpdate) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

// Workflow owns the single edit session and drives commits against the
// remote store. Saves and deletes are two-phase: a request surfaces the
// confirmation, an explicit confirm dispatches the network call. While a
// call is in flight every other trigger is rejected, so no two mutations
// for the same order can ever race.
type Workflow struct {
	mu           sync.Mutex
	state        State
	session      Session
	deleteTarget int64
	resumeState  State

	store  Mutator
	cache  *cache.OrderCollection
	codec  *servicetype.Codec
	logger *slog.Logger
}

// NewWorkflow creates a workflow in the Viewing state.
func NewWorkflow(store Mutator, orders *cache.OrderCollection, codec *servicetype.Codec, logger *slog.Logger) *Workflow {
	return &Workflow{
		state:  StateViewing,
		store:  store,
		cache:  orders,
		codec:  codec,
		logger: logger,
	}
}

// BeginEdit opens an edit session seeded from the cached record.
func (w *Workflow) BeginEdit(orderID int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireState(StateViewing); err != nil {
		return err
	}
	record, ok := w.cache.Get(orderID)
	if !ok {
		return domainErrors.ErrNotFound
	}

	w.session.Begin(record)
	w.state = StateEditing
	return nil
}

// SetField applies one field override to the open session. The cache is
// never touched; the change is invisible outside the session until a
// commit succeeds.
func (w *Workflow) SetField(field string, value any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireState(StateEditing); err != nil {
		return err
	}
	return w.session.SetField(field, value)
}

// CancelEdit discards the session without any network call.
func (w *Workflow) CancelEdit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireState(StateEditing); err != nil {
		return err
	}
	w.session.Discard()
	w.state = StateViewing
	return nil
}

// RequestSave surfaces the save confirmation. No request is sent until
// ConfirmSave resolves it.
func (w *Workflow) RequestSave() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireState(StateEditing); err != nil {
		return err
	}
	w.state = StateConfirmingSave
	return nil
}

// CancelSave dismisses the confirmation and returns to editing with the
// pending changes intact.
func (w *Workflow) CancelSave() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateConfirmingSave {
		return w.rejectConfirmation()
	}
	w.state = StateEditing
	return nil
}

// ConfirmSave encodes the draft's service label to its numeric id, sends
// the whole-record replace, and reconciles the cache with the label form
// on success. On any failure the session survives untouched and control
// returns to editing.
func (w *Workflow) ConfirmSave(ctx context.Context) (model.OrderRecord, error) {
	w.mu.Lock()
	if w.state != StateConfirmingSave {
		err := w.rejectConfirmation()
		w.mu.Unlock()
		return model.OrderRecord{}, err
	}

	draft, _ := w.session.Draft()
	serviceID, err := w.codec.ToID(draft.ServiceType)
	if err != nil {
		w.state = StateEditing
		w.mu.Unlock()
		return model.OrderRecord{}, err
	}

	w.state = StateSaving
	w.mu.Unlock()

	update := orderstore.OrderUpdate{
		OrderID:        draft.OrderID,
		CustomerName:   draft.CustomerName,
		ConsultantName: draft.ConsultantName,
		Note:           draft.Note,
		ServiceID:      serviceID,
		FromAddress:    draft.FromAddress,
		ToAddress:      draft.ToAddress,
		ScheduleDate:   draft.ScheduleDate,
		Price:          draft.Price,
	}
	saveErr := w.store.UpdateOrder(ctx, draft.OrderID, update)

	w.mu.Lock()
	defer w.mu.Unlock()

	if saveErr != nil {
		w.state = StateEditing
		w.logger.Error("order save failed",
			slog.Int64("order_id", draft.OrderID),
			slog.String("error", saveErr.Error()),
		)
		return model.OrderRecord{}, saveErr
	}

	w.cache.Replace(draft.OrderID, draft)
	w.session.Discard()
	w.state = StateViewing
	w.logger.Info("order saved", slog.Int64("order_id", draft.OrderID))
	return draft, nil
}

// RequestDelete surfaces the delete confirmation for the given order.
// Allowed from Viewing and from Editing, where the UI shows the delete
// action on the row being edited.
func (w *Workflow) RequestDelete(orderID int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateSaving, StateDeleting:
		return domainErrors.ErrActionInFlight
	case StateConfirmingSave, StateConfirmingDelete:
		return domainErrors.ErrConfirmationPending
	}
	if _, ok := w.cache.Get(orderID); !ok {
		return domainErrors.ErrNotFound
	}

	w.resumeState = w.state
	w.deleteTarget = orderID
	w.state = StateConfirmingDelete
	return nil
}

// CancelDelete dismisses the confirmation; the workflow returns to
// whatever it was doing before the request.
func (w *Workflow) CancelDelete() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateConfirmingDelete {
		return w.rejectConfirmation()
	}
	w.state = w.resumeState
	w.deleteTarget = 0
	return nil
}

// ConfirmDelete sends the delete request and removes the record from the
// cache only after the store acknowledged it. On failure the cache and
// any open session are left untouched.
func (w *Workflow) ConfirmDelete(ctx context.Context) (int64, error) {
	w.mu.Lock()
	if w.state != StateConfirmingDelete {
		err := w.rejectConfirmation()
		w.mu.Unlock()
		return 0, err
	}
	target := w.deleteTarget
	w.state = StateDeleting
	w.mu.Unlock()

	deleteErr := w.store.DeleteOrder(ctx, target)

	w.mu.Lock()
	defer w.mu.Unlock()

	if deleteErr != nil {
		w.state = w.resumeState
		w.logger.Error("order delete failed",
			slog.Int64("order_id", target),
			slog.String("error", deleteErr.Error()),
		)
		return 0, deleteErr
	}

	w.cache.Remove(target)
	if w.session.IsEditing(target) {
		w.session.Discard()
	}
	w.deleteTarget = 0
	if w.session.Active() {
		w.state = StateEditing
	} else {
		w.state = StateViewing
	}
	w.logger.Info("order deleted", slog.Int64("order_id", target))
	return target, nil
}

// Snapshot returns the current workflow state for display.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{State: w.state, DeleteOrderID: w.deleteTarget}
	if draft, ok := w.session.Draft(); ok {
		snap.EditingOrderID = draft.OrderID
		snap.Draft = &draft
	}
	return snap
}

// Idle reports whether nothing is being edited, confirmed, or in flight.
func (w *Workflow) Idle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state == StateViewing
}

// requireState maps a state mismatch to the sentinel explaining what the
// caller has to do first.
func (w *Workflow) requireState(want State) error {
	if w.state == want {
		return nil
	}
	switch w.state {
	case StateSaving, StateDeleting:
		return domainErrors.ErrActionInFlight
	case StateConfirmingSave, StateConfirmingDelete:
		return domainErrors.ErrConfirmationPending
	case StateEditing:
		return domainErrors.ErrEditInProgress
	default:
		return domainErrors.ErrNoActiveEdit
	}
}

func (w *Workflow) rejectConfirmation() error {
	switch w.state {
	case StateSaving, StateDeleting:
		return domainErrors.ErrActionInFlight
	default:
		return domainErrors.ErrNoPendingAction
	}
}
