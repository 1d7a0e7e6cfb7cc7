// Package audit implements the audit log repository using PostgreSQL.
// It provides append-only operations for audit records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/SiphoChris/afrilex/internal/adapter/postgres"
	"github.com/SiphoChris/afrilex/internal/domain"
)

const (
	table  = "audit_log"
	entity = "audit_record"
)

var columns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

type row struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r row) toDomain() (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		CreatedAt:  r.CreatedAt,
	}
	if len(r.Changes) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(r.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("%s %s unmarshal changes: %w", entity, r.ID, err)
		}
		record.Changes = changes
	}
	return record, nil
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new audit repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a new audit record and returns the persisted record.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}
	changes, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("%s marshal changes: %w", entity, err)
	}

	query, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(record.ID, record.UserID, string(record.EntityType), record.EntityID,
			string(record.Action), changes, record.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build insert %s: %w", entity, err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, entity, record.ID)
	}
	return rw.toDomain()
}

// Log creates an audit record without returning it.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// GetByEntity returns the change history of one entity, newest first.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	return r.list(ctx, squirrel.Eq{"entity_type": string(entityType), "entity_id": entityID}, limit)
}

// Recent returns the latest audit records across all entities.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	return r.list(ctx, nil, limit)
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer, limit int) ([]domain.AuditRecord, error) {
	sb := postgres.Builder.Select(columns...).From(table).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))
	if where != nil {
		sb = sb.Where(where)
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", entity, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", entity, err)
	}

	records := make([]domain.AuditRecord, 0, len(rows))
	for _, rw := range rows {
		rec, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
