package cache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/movecrm/backoffice/internal/domain/model"
)

// Lister is the slice of the order store the cache needs for loading.
type Lister interface {
	OrderDetails(ctx context.Context) ([]model.OrderRecord, error)
}

// OrderCollection mirrors the last successful fetch of the order list.
// Load is the only operation that touches the network; Replace and Remove
// are pure in-memory reconciliation steps applied after the corresponding
// remote mutation has already succeeded.
type OrderCollection struct {
	mu     sync.RWMutex
	store  Lister
	logger *slog.Logger

	records []model.OrderRecord
}

// NewOrderCollection creates an empty cache backed by the given store.
func NewOrderCollection(store Lister, logger *slog.Logger) *OrderCollection {
	return &OrderCollection{store: store, logger: logger}
}

// Load fetches the full order list and replaces the cache wholesale.
// On failure the cache keeps its previous contents.
func (c *OrderCollection) Load(ctx context.Context) error {
	records, err := c.store.OrderDetails(ctx)
	if err != nil {
		c.logger.Error("order list fetch failed", slog.String("error", err.Error()))
		return err
	}

	c.mu.Lock()
	c.records = records
	c.mu.Unlock()

	c.logger.Info("order cache loaded", slog.Int("orders", len(records)))
	return nil
}

// All returns a copy of the cached records in fetch order.
func (c *OrderCollection) All() []model.OrderRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.OrderRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the cached record with the given id.
func (c *OrderCollection) Get(orderID int64) (model.OrderRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.records {
		if r.OrderID == orderID {
			return r, true
		}
	}
	return model.OrderRecord{}, false
}

// Replace overwrites the record matching orderID. A record's identity is
// its order id and cannot change through reconciliation. No-op when the
// id is not cached.
func (c *OrderCollection) Replace(orderID int64, record model.OrderRecord) {
	record.OrderID = orderID

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.records {
		if r.OrderID == orderID {
			c.records[i] = record
			return
		}
	}
}

// Remove deletes the record matching orderID. No-op when absent, so a
// repeated call for an already removed id is harmless.
func (c *OrderCollection) Remove(orderID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.records {
		if r.OrderID == orderID {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return
		}
	}
}

// Len reports the number of cached records.
func (c *OrderCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
