package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup scoped to a hub and non-deleted state
// yields nothing. Handlers surface it as a generic not-found response so that
// cross-hub existence is never leaked.
var ErrNotFound = errors.New("not found")

// HubEntity is the base record shape shared by every entity in the module.
// HubID is set at creation and never changes; every query must be scoped by it.
// Deletion is always soft within this module: IsDeleted plus DeletedAt, never a
// physical row removal.
type HubEntity struct {
	ID        uuid.UUID  `json:"id"`
	HubID     uuid.UUID  `json:"hub_id"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SoftDelete marks the entity deleted at the given time.
func (e *HubEntity) SoftDelete(now time.Time) {
	e.IsDeleted = true
	e.DeletedAt = &now
	e.UpdatedAt = now
}
