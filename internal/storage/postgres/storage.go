package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/movecrm/backoffice/internal/domain/model"
	"github.com/movecrm/backoffice/internal/domain/repository"
)

// DB is the pool surface the storage uses. *pgxpool.Pool satisfies it
// in production; tests substitute a mock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Storage keeps the audit trail in PostgreSQL.
type Storage struct {
	db     DB
	logger *slog.Logger
}

type auditRepository struct {
	storage *Storage
}

// New connects to the database and initializes the schema.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := NewWithDB(pool, logger)
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// NewWithDB wraps an existing pool without touching the schema.
func NewWithDB(db DB, logger *slog.Logger) *Storage {
	return &Storage{db: db, logger: logger}
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// Audit returns the audit log repository.
func (s *Storage) Audit() repository.AuditLog {
	return &auditRepository{storage: s}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.Ping(ctx)
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS order_audit (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL,
            action TEXT NOT NULL,
            payload JSONB NOT NULL,
            recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_order_audit_order ON order_audit(order_id, recorded_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Record persists one audit entry and returns it with the generated
// identifier and timestamp filled in.
func (r *auditRepository) Record(ctx context.Context, entry model.AuditEntry) (*model.AuditEntry, error) {
	query, args, err := builder.
		Insert("order_audit").
		Columns("order_id", "action", "payload").
		Values(entry.OrderID, entry.Action, entry.Payload).
		Suffix("RETURNING id, recorded_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.storage.db.QueryRow(ctx, query, args...).Scan(&entry.ID, &entry.RecordedAt); err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns audit entries newest first, optionally filtered by order.
func (r *auditRepository) List(ctx context.Context, filter repository.AuditFilter) ([]model.AuditEntry, error) {
	b := builder.
		Select("id", "order_id", "action", "payload", "recorded_at").
		From("order_audit").
		OrderBy("recorded_at DESC", "id DESC")
	if filter.OrderID != 0 {
		b = b.Where(squirrel.Eq{"order_id": filter.OrderID})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.AuditEntry
	for rows.Next() {
		var e model.AuditEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Action, &e.Payload, &e.RecordedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
