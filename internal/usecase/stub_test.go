package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/movecrm/backoffice/internal/adapter/orderstore"
	"github.com/movecrm/backoffice/internal/cache"
	"github.com/movecrm/backoffice/internal/domain/model"
	"github.com/movecrm/backoffice/internal/servicetype"
)

type clientStub struct {
	OrderDetailsFn    func(ctx context.Context) ([]model.OrderRecord, error)
	SearchFn          func(ctx context.Context, customerName string) ([]model.OrderRecord, error)
	CreateFn          func(ctx context.Context, order model.NewOrder) error
	CustomersFn       func(ctx context.Context) ([]model.Customer, error)
	SearchCustomersFn func(ctx context.Context, name string) ([]model.Customer, error)
	ConsultantsFn     func(ctx context.Context) ([]model.Consultant, error)

	created []model.NewOrder
}

func (s *clientStub) OrderDetails(ctx context.Context) ([]model.OrderRecord, error) {
	if s.OrderDetailsFn != nil {
		return s.OrderDetailsFn(ctx)
	}
	return nil, nil
}

func (s *clientStub) SearchOrders(ctx context.Context, customerName string) ([]model.OrderRecord, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, customerName)
	}
	return nil, nil
}

func (s *clientStub) CreateOrder(ctx context.Context, order model.NewOrder) error {
	s.created = append(s.created, order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return nil
}

func (s *clientStub) UpdateOrder(ctx context.Context, orderID int64, update orderstore.OrderUpdate) error {
	return nil
}

func (s *clientStub) DeleteOrder(ctx context.Context, orderID int64) error {
	return nil
}

func (s *clientStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return nil, nil
}

func (s *clientStub) SearchCustomers(ctx context.Context, name string) ([]model.Customer, error) {
	if s.SearchCustomersFn != nil {
		return s.SearchCustomersFn(ctx, name)
	}
	return nil, nil
}

func (s *clientStub) Consultants(ctx context.Context) ([]model.Consultant, error) {
	if s.ConsultantsFn != nil {
		return s.ConsultantsFn(ctx)
	}
	return nil, nil
}

func (s *clientStub) ServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	return testServiceTypes(), nil
}

type gateStub struct {
	busy bool
}

func (g gateStub) Idle() bool { return !g.busy }

func testServiceTypes() []model.ServiceType {
	return []model.ServiceType{
		{ID: 1, Label: "MOVING"},
		{ID: 2, Label: "PACKING"},
		{ID: 3, Label: "CLEANING_DELUXE"},
	}
}

func testCodec(t *testing.T) *servicetype.Codec {
	t.Helper()
	codec, err := servicetype.NewCodec(testServiceTypes())
	if err != nil {
		t.Fatalf("build codec: %v", err)
	}
	return codec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCollection(store cache.Lister) *cache.OrderCollection {
	return cache.NewOrderCollection(store, testLogger())
}
