// Package word implements the word repository using PostgreSQL. A word is
// stored as a JSONB document; the columns next to it back the lookup paths
// by language, text, creator, status and publication.
package word

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
	table  = "words"
	entity = "word"
)

var columns = []string{
	"id", "language_code", "word", "status", "is_published",
	"document", "created_by", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID           uuid.UUID `db:"id"`
	LanguageCode string    `db:"language_code"`
	Word         string    `db:"word"`
	Status       string    `db:"status"`
	IsPublished  bool      `db:"is_published"`
	Document     []byte    `db:"document"`
	CreatedBy    uuid.UUID `db:"created_by"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() (domain.Word, error) {
	var w domain.Word
	if err := json.Unmarshal(r.Document, &w); err != nil {
		return domain.Word{}, fmt.Errorf("%s %s: decode document: %w", entity, r.ID, err)
	}
	w.ID = r.ID
	w.LanguageCode = r.LanguageCode
	w.Word = r.Word
	w.Metadata.Status = domain.WordStatus(r.Status)
	w.Metadata.IsPublished = r.IsPublished
	w.Metadata.CreatedBy = r.CreatedBy
	w.Metadata.CreatedAt = r.CreatedAt
	w.Metadata.UpdatedAt = r.UpdatedAt
	return w, nil
}

func encode(w domain.Word) ([]byte, error) {
	doc, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("%s %s: encode document: %w", entity, w.ID, err)
	}
	return doc, nil
}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new word repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a word. ID, status and timestamps are set by the caller.
func (r *Repo) Create(ctx context.Context, w domain.Word) (domain.Word, error) {
	doc, err := encode(w)
	if err != nil {
		return domain.Word{}, err
	}

	query, args, err := postgres.Builder.Insert(table).
		Columns("id", "language_code", "word", "word_normalized", "status", "is_published",
			"document", "created_by", "created_at", "updated_at").
		Values(w.ID, w.LanguageCode, w.Word, domain.FoldText(w.Word), string(w.Metadata.Status),
			w.Metadata.IsPublished, doc, w.Metadata.CreatedBy, w.Metadata.CreatedAt, w.Metadata.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Word{}, fmt.Errorf("build insert %s: %w", entity, err)
	}

	return r.getOne(ctx, w.ID, query, args...)
}

// Update replaces the document and lookup columns of an existing word.
func (r *Repo) Update(ctx context.Context, w domain.Word) (domain.Word, error) {
	doc, err := encode(w)
	if err != nil {
		return domain.Word{}, err
	}

	query, args, err := postgres.Builder.Update(table).
		Set("language_code", w.LanguageCode).
		Set("word", w.Word).
		Set("word_normalized", domain.FoldText(w.Word)).
		Set("status", string(w.Metadata.Status)).
		Set("is_published", w.Metadata.IsPublished).
		Set("document", doc).
		Set("updated_at", w.Metadata.UpdatedAt).
		Where(squirrel.Eq{"id": w.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Word{}, fmt.Errorf("build update %s: %w", entity, err)
	}

	return r.getOne(ctx, w.ID, query, args...)
}

// SetPublished flips the publication flag and returns the updated word.
func (r *Repo) SetPublished(ctx context.Context, id uuid.UUID, published bool, at time.Time) (domain.Word, error) {
	query, args, err := postgres.Builder.Update(table).
		Set("is_published", published).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Word{}, fmt.Errorf("build publish %s: %w", entity, err)
	}

	return r.getOne(ctx, id, query, args...)
}

// Delete removes a word and returns the language code it belonged to.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	var languageCode string
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `DELETE FROM words WHERE id = $1 RETURNING language_code`, id).
		Scan(&languageCode)
	if err != nil {
		return "", postgres.MapError(err, entity, id)
	}
	return languageCode, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Word{}, fmt.Errorf("build select %s: %w", entity, err)
	}
	return r.getOne(ctx, id, query, args...)
}

// List returns one page of words matching filter, ordered by normalized text,
// and the total number of matches.
func (r *Repo) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	where := conditions(filter)

	countQuery, countArgs, err := postgres.Builder.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count %s: %w", entity, err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", entity, err)
	}
	if total == 0 {
		return []domain.Word{}, 0, nil
	}

	sb := postgres.Builder.Select(columns...).From(table).Where(where).
		OrderBy("word_normalized", "id")
	if filter.Limit > 0 {
		sb = sb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sb = sb.Offset(uint64(filter.Offset))
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list %s: %w", entity, err)
	}

	words, err := r.getMany(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return words, total, nil
}

// conditions translates a filter into a WHERE clause. A search term takes
// precedence over the letter.
func conditions(filter domain.WordFilter) squirrel.And {
	where := squirrel.And{}
	if filter.LanguageCode != "" {
		where = append(where, squirrel.Eq{"language_code": filter.LanguageCode})
	}
	if term := domain.FoldText(filter.Search); term != "" {
		where = append(where, postgres.Contains("word_normalized", term))
	} else if letter := domain.FoldText(filter.Letter); letter != "" {
		where = append(where, postgres.HasPrefix("word_normalized", letter))
	}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Published != nil {
		where = append(where, squirrel.Eq{"is_published": *filter.Published})
	}
	if filter.CreatedBy != nil {
		where = append(where, squirrel.Eq{"created_by": *filter.CreatedBy})
	}
	return where
}

type countsRow struct {
	Total      int `db:"total"`
	Published  int `db:"published"`
	Incomplete int `db:"incomplete"`
}

// Counts returns the word totals in a single scan.
func (r *Repo) Counts(ctx context.Context) (domain.WordCounts, error) {
	var c countsRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, `
		SELECT count(*)                                    AS total,
		       count(*) FILTER (WHERE is_published)        AS published,
		       count(*) FILTER (WHERE status = 'incomplete') AS incomplete
		FROM words`)
	if err != nil {
		return domain.WordCounts{}, fmt.Errorf("count words: %w", err)
	}
	return domain.WordCounts{Total: c.Total, Published: c.Published, Incomplete: c.Incomplete}, nil
}

// CountByLanguage returns the number of words stored for languageCode.
func (r *Repo) CountByLanguage(ctx context.Context, languageCode string) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT count(*) FROM words WHERE language_code = $1`, languageCode).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count words for %s: %w", languageCode, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, key any, query string, args ...any) (domain.Word, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.Word{}, postgres.MapError(err, entity, key)
	}
	return rw.toDomain()
}

func (r *Repo) getMany(ctx context.Context, query string, args ...any) ([]domain.Word, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", entity, err)
	}

	out := make([]domain.Word, 0, len(rows))
	for _, rw := range rows {
		w, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
