package model

import "time"

// Validation constants shared across entities
const (
	MaxNameLength        = 200
	MaxDescriptionLength = 10000
)

// Meta carries the fields shared by every stored entity.
// The id is assigned by the store on creation. The owner is set once from the
// authenticated subject and never changed by updates.
type Meta struct {
	ID        string    `json:"id,omitempty"`
	OwnerID   string    `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// EntityID returns the store-assigned record id
func (m Meta) EntityID() string { return m.ID }

// Owner returns the id of the subject that owns the entity
func (m Meta) Owner() string { return m.OwnerID }

// SetID overwrites the record id
func (m *Meta) SetID(id string) { m.ID = id }

// SetOwner overwrites the owning subject id
func (m *Meta) SetOwner(ownerID string) { m.OwnerID = ownerID }

// Entity is implemented by every stored entity value
type Entity interface {
	EntityID() string
	Owner() string
	Validate() []FieldError
}

// Record is implemented by pointers to stored entities, adding the mutators
// the service layer needs when stamping ownership at creation
type Record interface {
	Entity
	SetID(id string)
	SetOwner(ownerID string)
}

// Patch describes a partial update. Changes returns only the fields the
// client supplied; everything else is left untouched by the merge.
type Patch interface {
	Changes() map[string]any
	Validate() []FieldError
}

// RawPatch is a pre-assembled set of field changes, used internally by
// services that compute updates themselves
type RawPatch map[string]any

// Changes returns the patch fields as-is
func (p RawPatch) Changes() map[string]any { return p }

// Validate always passes; raw patches are built by trusted code
func (p RawPatch) Validate() []FieldError { return nil }
