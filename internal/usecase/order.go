package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/movecrm/backoffice/internal/adapter/orderstore"
	"github.com/movecrm/backoffice/internal/cache"
	domainErrors "github.com/movecrm/backoffice/internal/domain/errors"
	"github.com/movecrm/backoffice/internal/domain/model"
	"github.com/movecrm/backoffice/internal/servicetype"
)

// WorkflowGate reports whether the edit workflow is idle. Cache
// reloads are deferred while an edit or confirmation is underway.
type WorkflowGate interface {
	Idle() bool
}

// OrderUseCase serves the order listing, search and placement
// operations. Listing reads from the in-memory collection; search and
// placement go to the order store directly.
type OrderUseCase struct {
	store    orderstore.Client
	orders   *cache.OrderCollection
	codec    *servicetype.Codec
	gate     WorkflowGate
	validate *validator.Validate
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(store orderstore.Client, orders *cache.OrderCollection, codec *servicetype.Codec, gate WorkflowGate, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		store:    store,
		orders:   orders,
		codec:    codec,
		gate:     gate,
		validate: validator.New(),
		logger:   logger,
	}
}

// List returns the cached order collection.
func (u *OrderUseCase) List() []model.OrderRecord {
	return u.orders.All()
}

// Reload refetches the full order list from the order store.
func (u *OrderUseCase) Reload(ctx context.Context) error {
	return u.orders.Load(ctx)
}

// Search queries the order store by customer name. The cached
// collection is left untouched.
func (u *OrderUseCase) Search(ctx context.Context, customerName string) ([]model.OrderRecord, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, fmt.Errorf("%w: customerName", domainErrors.ErrMissingField)
	}
	return u.store.SearchOrders(ctx, customerName)
}

// Place validates and submits a new order, then refreshes the cached
// collection so the listing picks it up.
func (u *OrderUseCase) Place(ctx context.Context, order model.NewOrder) error {
	if err := u.validate.Struct(order); err != nil {
		return fmt.Errorf("%w: %s", domainErrors.ErrInvalidFieldValue, err)
	}
	if _, err := u.codec.ToLabel(order.ServiceID); err != nil {
		return err
	}
	if err := u.store.CreateOrder(ctx, order); err != nil {
		return err
	}
	if !u.gate.Idle() {
		u.logger.Debug("order list refresh deferred, workflow busy")
		return nil
	}
	if err := u.orders.Load(ctx); err != nil {
		u.logger.Warn("order list refresh after placement failed", slog.String("error", err.Error()))
	}
	return nil
}
