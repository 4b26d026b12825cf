package domain

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel is the common base struct for all domain entities.
// Records are never physically removed: Status is the soft-delete flag,
// true meaning visible/active. UpdatedAt stays nil until the first
// mutation and is stamped (UTC) on every mutating operation afterwards;
// automatic stamping is disabled so the store controls it explicitly.
type BaseModel struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Status    bool       `gorm:"not null" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}

// GetID returns the entity identifier.
func (m *BaseModel) GetID() string { return m.ID }

// SetID assigns the entity identifier. Identifiers are immutable after
// creation; this is only called when a record is first persisted.
func (m *BaseModel) SetID(id string) { m.ID = id }

// SetStatus flips the soft-delete flag.
func (m *BaseModel) SetStatus(active bool) { m.Status = active }

// Touch stamps the last-mutation time.
func (m *BaseModel) Touch(now time.Time) { m.UpdatedAt = &now }

// NewID returns a fresh opaque entity identifier.
func NewID() string {
	return uuid.NewString()
}
