// Package user implements the user directory repository using PostgreSQL.
// Users are owned by the identity provider; rows are upserted on activity.
package user

import (
	"context"
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
	table  = "users"
	entity = "user"
)

var columns = []string{"id", "name", "email", "role", "last_active_at", "created_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	LastActiveAt time.Time `db:"last_active_at"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Role:         domain.UserRole(r.Role),
		LastActiveAt: r.LastActiveAt,
		CreatedAt:    r.CreatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Touch inserts the user on first sight or refreshes last_active_at. Name and
// email are refreshed when the token carries them. The stored role wins over
// u.Role for existing users; u.Role only seeds new rows.
func (r *Repo) Touch(ctx context.Context, u domain.User) (domain.User, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, `
		INSERT INTO users (id, name, email, role, last_active_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (id) DO UPDATE SET
			name           = COALESCE(NULLIF(EXCLUDED.name, ''), users.name),
			email          = COALESCE(NULLIF(EXCLUDED.email, ''), users.email),
			last_active_at = EXCLUDED.last_active_at
		`+returning,
		u.ID, u.Name, u.Email, string(u.Role), u.LastActiveAt,
	)
	if err != nil {
		return domain.User{}, postgres.MapError(err, entity, u.ID)
	}
	return rw.toDomain(), nil
}

// UpdateRole changes the stored role of a user.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (domain.User, error) {
	query, args, err := postgres.Builder.Update(table).
		Set("role", string(role)).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build update %s: %w", entity, err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.User{}, postgres.MapError(err, entity, id)
	}
	return rw.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw,
		`SELECT `+strings.Join(columns, ", ")+` FROM users WHERE id = $1`, id)
	if err != nil {
		return domain.User{}, postgres.MapError(err, entity, id)
	}
	return rw.toDomain(), nil
}

// GetByIDs returns the users with the given ids in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	query, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}
	return r.selectUsers(ctx, query, args...)
}

// List returns users ordered by most recent activity, and the total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := postgres.Builder.Select(columns...).From(table).
		OrderBy("last_active_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list %s: %w", entity, err)
	}

	users, err := r.selectUsers(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Count returns the number of known users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *Repo) selectUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", entity, err)
	}
	users := make([]domain.User, len(rows))
	for i, rw := range rows {
		users[i] = rw.toDomain()
	}
	return users, nil
}
