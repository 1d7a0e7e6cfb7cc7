package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator or reader known to the service. Accounts are owned by
// the external identity provider; this row mirrors what the tokens tell us.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	LastActiveAt time.Time `json:"last_active_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	EntityType EntityType     `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id,omitempty"`
	Action     AuditAction    `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// AudioFile is an uploaded pronunciation recording.
type AudioFile struct {
	ID          uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}
