// Package audio stores uploaded pronunciation recordings in PostgreSQL.
package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/SiphoChris/afrilex/internal/adapter/postgres"
	"github.com/SiphoChris/afrilex/internal/domain"
)

const entity = "audio_file"

type row struct {
	ID          uuid.UUID `db:"id"`
	Filename    string    `db:"filename"`
	ContentType string    `db:"content_type"`
	Size        int64     `db:"size"`
	Data        []byte    `db:"data"`
	CreatedBy   uuid.UUID `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.AudioFile {
	return domain.AudioFile{
		ID:          r.ID,
		Filename:    r.Filename,
		ContentType: r.ContentType,
		Size:        r.Size,
		Data:        r.Data,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
	}
}

// Repo provides audio blob persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new audio repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create stores an audio file.
func (r *Repo) Create(ctx context.Context, f domain.AudioFile) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO audio_files (id, filename, content_type, size, data, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.Filename, f.ContentType, f.Size, f.Data, f.CreatedBy, f.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, f.ID)
	}
	return nil
}

// GetByID returns an audio file including its bytes.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.AudioFile, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw,
		`SELECT id, filename, content_type, size, data, created_by, created_at
		 FROM audio_files WHERE id = $1`, id)
	if err != nil {
		return domain.AudioFile{}, postgres.MapError(err, entity, id)
	}
	return rw.toDomain(), nil
}

// DeleteOrphans removes audio files created before olderThan that no word's
// pronunciation URL points at. urlPrefix is the public prefix the URLs are
// built with, e.g. "/media/audio/".
func (r *Repo) DeleteOrphans(ctx context.Context, urlPrefix string, olderThan time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM audio_files a
		 WHERE a.created_at < $2
		   AND NOT EXISTS (
		       SELECT 1 FROM words w
		       WHERE w.document->'phonology'->>'pronunciation_url' = $1 || a.id::text
		   )`,
		urlPrefix, olderThan,
	)
	if err != nil {
		return 0, fmt.Errorf("delete orphan audio files: %w", err)
	}
	return tag.RowsAffected(), nil
}
