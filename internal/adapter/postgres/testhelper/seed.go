package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SiphoChris/afrilex/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueLanguageCode returns a code no other test uses. The database does not
// restrict codes to the catalog, so parallel tests can each own a dictionary.
func UniqueLanguageCode() string {
	return "t" + uniqueSuffix()
}

// SeedUser creates an admin user and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		Role:         domain.UserRoleAdmin,
		LastActiveAt: now,
		CreatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, role, last_active_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, string(user.Role), user.LastActiveAt, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedDictionary creates a default dictionary for languageCode owned by createdBy.
func SeedDictionary(t *testing.T, pool *pgxpool.Pool, languageCode string, createdBy uuid.UUID) domain.Dictionary {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	dict := domain.NewDefaultDictionary(languageCode)
	dict.ID = uuid.New()
	dict.Name = domain.LabelPair{Native: "Isichazi-magama " + languageCode, Bilingual: "Dictionary " + languageCode}
	dict.Metadata.CreatedBy = createdBy
	dict.Metadata.CreatedAt = now
	dict.Metadata.UpdatedAt = now

	doc, err := json.Marshal(dict)
	if err != nil {
		t.Fatalf("testhelper: SeedDictionary marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO dictionaries (id, language_code, is_published, word_count, document, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, 0, $4, $5, $6, $6)`,
		dict.ID, dict.LanguageCode, dict.Metadata.IsPublished, doc, createdBy, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDictionary insert: %v", err)
	}

	return dict
}
