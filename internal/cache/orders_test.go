package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/movecrm/backoffice/internal/domain/model"
)

type listerStub struct {
	records []model.OrderRecord
	err     error
	calls   int
}

func (s *listerStub) OrderDetails(context.Context) ([]model.OrderRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func sampleRecords() []model.OrderRecord {
	return []model.OrderRecord{
		{OrderID: 5, CustomerName: "Astrid", ServiceType: "MOVING", ScheduleDate: "2024-01-01", Price: 100},
		{OrderID: 6, CustomerName: "Bo", ServiceType: "PACKING", ScheduleDate: "2024-02-02", Price: 200},
	}
}

func TestLoadReplacesWholesale(t *testing.T) {
	store := &listerStub{records: sampleRecords()}
	cache := NewOrderCollection(store, testLogger())

	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Len() != 2 {
		t.Fatalf("expected two records, got %d", cache.Len())
	}

	store.records = sampleRecords()[:1]
	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected wholesale replacement, got %d records", cache.Len())
	}
}

func TestLoadFailureKeepsPreviousContents(t *testing.T) {
	store := &listerStub{records: sampleRecords()}
	cache := NewOrderCollection(store, testLogger())
	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.err = errors.New("connection refused")
	if err := cache.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if cache.Len() != 2 {
		t.Fatalf("cache must keep previous value on failed load, got %d records", cache.Len())
	}
}

func TestReplaceMergesByIdentity(t *testing.T) {
	store := &listerStub{records: sampleRecords()}
	cache := NewOrderCollection(store, testLogger())
	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := sampleRecords()[0]
	updated.Price = 150
	cache.Replace(5, updated)

	rec, ok := cache.Get(5)
	if !ok {
		t.Fatal("record 5 missing")
	}
	if rec.Price != 150 {
		t.Fatalf("expected price 150, got %v", rec.Price)
	}
	if store.calls != 1 {
		t.Fatalf("replace must not touch the network, got %d calls", store.calls)
	}
}

func TestReplaceKeepsOrderIDImmutable(t *testing.T) {
	store := &listerStub{records: sampleRecords()}
	cache := NewOrderCollection(store, testLogger())
	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := sampleRecords()[0]
	updated.OrderID = 99
	cache.Replace(5, updated)

	if _, ok := cache.Get(99); ok {
		t.Fatal("replace must not change record identity")
	}
	if _, ok := cache.Get(5); !ok {
		t.Fatal("record 5 must still be present")
	}
}

func TestReplaceUnknownIDIsNoop(t *testing.T) {
	store := &listerStub{records: sampleRecords()}
	cache := NewOrderCollection(store, testLogger())
	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cache.Replace(42, model.OrderRecord{OrderID: 42})
	if cache.Len() != 2 {
		t.Fatalf("expected no insertion, got %d records", cache.Len())
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := &listerStub{records: sampleRecords()}
	cache := NewOrderCollection(store, testLogger())
	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cache.Remove(5)
	if _, ok := cache.Get(5); ok {
		t.Fatal("record 5 should be gone")
	}
	cache.Remove(5)
	cache.Remove(5)
	if cache.Len() != 1 {
		t.Fatalf("expected one remaining record, got %d", cache.Len())
	}
}

func TestAllReturnsCopy(t *testing.T) {
	store := &listerStub{records: sampleRecords()}
	cache := NewOrderCollection(store, testLogger())
	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := cache.All()
	all[0].Price = 999

	rec, _ := cache.Get(5)
	if rec.Price != 100 {
		t.Fatalf("mutating the returned slice must not affect the cache, got %v", rec.Price)
	}
}
