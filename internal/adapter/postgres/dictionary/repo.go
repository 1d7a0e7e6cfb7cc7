// Package dictionary implements the dictionary configuration repository using
// PostgreSQL. The configuration is stored as a JSONB document next to the
// columns used for lookups (language code, publication, creator).
package dictionary

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
	table  = "dictionaries"
	entity = "dictionary"
)

var columns = []string{
	"id", "language_code", "is_published", "word_count",
	"document", "created_by", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID           uuid.UUID `db:"id"`
	LanguageCode string    `db:"language_code"`
	IsPublished  bool      `db:"is_published"`
	WordCount    int       `db:"word_count"`
	Document     []byte    `db:"document"`
	CreatedBy    uuid.UUID `db:"created_by"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// toDomain decodes the document and overlays the column values, which are
// authoritative for identity, counters and timestamps.
func (r row) toDomain() (domain.Dictionary, error) {
	var d domain.Dictionary
	if err := json.Unmarshal(r.Document, &d); err != nil {
		return domain.Dictionary{}, fmt.Errorf("%s %s: decode document: %w", entity, r.ID, err)
	}
	d.ID = r.ID
	d.LanguageCode = r.LanguageCode
	d.WordCount = r.WordCount
	d.Metadata.IsPublished = r.IsPublished
	d.Metadata.CreatedBy = r.CreatedBy
	d.Metadata.CreatedAt = r.CreatedAt
	d.Metadata.UpdatedAt = r.UpdatedAt
	return d, nil
}

func encode(d domain.Dictionary) ([]byte, error) {
	d.WordCount = 0
	doc, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("%s %s: encode document: %w", entity, d.ID, err)
	}
	return doc, nil
}

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new dictionary repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a dictionary. ID and timestamps are set by the caller.
func (r *Repo) Create(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error) {
	doc, err := encode(d)
	if err != nil {
		return domain.Dictionary{}, err
	}

	query, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(d.ID, d.LanguageCode, d.Metadata.IsPublished, 0, doc,
			d.Metadata.CreatedBy, d.Metadata.CreatedAt, d.Metadata.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Dictionary{}, fmt.Errorf("build insert %s: %w", entity, err)
	}

	return r.getOne(ctx, d.ID, query, args...)
}

// Update replaces the configuration document of an existing dictionary.
// word_count and created_* are left untouched.
func (r *Repo) Update(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error) {
	doc, err := encode(d)
	if err != nil {
		return domain.Dictionary{}, err
	}

	query, args, err := postgres.Builder.Update(table).
		Set("language_code", d.LanguageCode).
		Set("is_published", d.Metadata.IsPublished).
		Set("document", doc).
		Set("updated_at", d.Metadata.UpdatedAt).
		Where(squirrel.Eq{"id": d.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Dictionary{}, fmt.Errorf("build update %s: %w", entity, err)
	}

	return r.getOne(ctx, d.ID, query, args...)
}

// Delete removes a dictionary. A dictionary still referenced by words yields
// domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM dictionaries WHERE id = $1`, id)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
		}
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// AdjustWordCount adds delta to the word counter of the dictionary for
// languageCode. The counter never drops below zero.
func (r *Repo) AdjustWordCount(ctx context.Context, languageCode string, delta int) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE dictionaries SET word_count = GREATEST(word_count + $2, 0) WHERE language_code = $1`,
		languageCode, delta,
	)
	if err != nil {
		return postgres.MapError(err, entity, languageCode)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, languageCode, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a dictionary by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Dictionary, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Dictionary{}, fmt.Errorf("build select %s: %w", entity, err)
	}
	return r.getOne(ctx, id, query, args...)
}

// GetByLanguage returns the dictionary configured for languageCode.
func (r *Repo) GetByLanguage(ctx context.Context, languageCode string) (domain.Dictionary, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"language_code": languageCode}).
		ToSql()
	if err != nil {
		return domain.Dictionary{}, fmt.Errorf("build select %s: %w", entity, err)
	}
	return r.getOne(ctx, languageCode, query, args...)
}

// GetByLanguages returns the dictionaries for the given codes. Missing codes
// are simply absent from the result.
func (r *Repo) GetByLanguages(ctx context.Context, codes []string) ([]domain.Dictionary, error) {
	if len(codes) == 0 {
		return []domain.Dictionary{}, nil
	}
	query, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"language_code": codes}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}
	return r.getMany(ctx, query, args...)
}

// List returns dictionaries ordered by language code.
func (r *Repo) List(ctx context.Context, filter domain.DictionaryFilter) ([]domain.Dictionary, error) {
	sb := postgres.Builder.Select(columns...).From(table).OrderBy("language_code")
	if filter.PublishedOnly {
		sb = sb.Where(squirrel.Eq{"is_published": true})
	}
	if filter.CreatedBy != nil {
		sb = sb.Where(squirrel.Eq{"created_by": *filter.CreatedBy})
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", entity, err)
	}
	return r.getMany(ctx, query, args...)
}

// Count returns the number of dictionaries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT count(*) FROM dictionaries`).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count dictionaries: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, key any, query string, args ...any) (domain.Dictionary, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.Dictionary{}, postgres.MapError(err, entity, key)
	}
	return rw.toDomain()
}

func (r *Repo) getMany(ctx context.Context, query string, args ...any) ([]domain.Dictionary, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", entity, err)
	}

	out := make([]domain.Dictionary, 0, len(rows))
	for _, rw := range rows {
		d, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
