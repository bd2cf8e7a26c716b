package service

import (
	"context"
	"fmt"

	"github.com/forgo/realmkeep/internal/model"
)

// Store is the collection gateway a resource service runs on,
// implemented by repository.Collection
type Store[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
	QueryByOwner(ctx context.Context, ownerID string) ([]T, error)
	Create(ctx context.Context, entity *T) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// record constrains PT to a pointer to the entity type that carries the
// Record mutators
type record[T any] interface {
	*T
	model.Record
}

// Resource provides ownership-scoped CRUD for one entity kind.
// Absent and not-owned records are indistinguishable to callers; both
// surface as (nil, nil).
type Resource[T any, PT record[T]] struct {
	store Store[T]
}

// NewResource creates a resource service over a collection gateway
func NewResource[T any, PT record[T]](store Store[T]) *Resource[T, PT] {
	return &Resource[T, PT]{store: store}
}

// Create stores a new entity owned by the subject. Any client-supplied id
// or owner is discarded. The stored entity is re-fetched so the caller sees
// exactly what the store holds.
func (r *Resource[T, PT]) Create(ctx context.Context, subjectID string, entity *T) (*T, error) {
	if subjectID == "" {
		return nil, ErrSubjectRequired
	}

	rec := PT(entity)
	rec.SetID("")
	rec.SetOwner(subjectID)

	id, err := r.store.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}

	created, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch after create: %w", err)
	}
	if created == nil {
		return nil, fmt.Errorf("fetch after create: record %s missing", id)
	}
	return created, nil
}

// Get fetches an entity the subject owns. It returns (nil, nil) when the
// record is absent or owned by another subject.
func (r *Resource[T, PT]) Get(ctx context.Context, subjectID, id string) (*T, error) {
	entity, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}
	if PT(entity).Owner() != subjectID {
		return nil, nil
	}
	return entity, nil
}

// List returns every entity the subject owns, in unspecified order
func (r *Resource[T, PT]) List(ctx context.Context, subjectID string) ([]T, error) {
	if subjectID == "" {
		return nil, ErrSubjectRequired
	}
	return r.store.QueryByOwner(ctx, subjectID)
}

// Update merges the patch into an entity the subject owns. The id, owner,
// and creation timestamp are stripped from the patch regardless of what the
// client supplied. An empty patch returns the entity unchanged. It returns
// (nil, nil) when the record is absent or owned by another subject.
func (r *Resource[T, PT]) Update(ctx context.Context, subjectID, id string, patch model.Patch) (*T, error) {
	current, err := r.Get(ctx, subjectID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	changes := patch.Changes()
	fields := make(map[string]interface{}, len(changes))
	for k, v := range changes {
		fields[k] = v
	}
	delete(fields, "id")
	delete(fields, "owner_id")
	delete(fields, "created_at")

	if len(fields) == 0 {
		return current, nil
	}

	updated, err := r.store.Update(ctx, PT(current).EntityID(), fields)
	if err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}
	return updated, nil
}

// Delete removes an entity the subject owns. It reports false when the
// record is absent or owned by another subject.
func (r *Resource[T, PT]) Delete(ctx context.Context, subjectID, id string) (bool, error) {
	current, err := r.Get(ctx, subjectID, id)
	if err != nil {
		return false, err
	}
	if current == nil {
		return false, nil
	}
	return r.store.Delete(ctx, PT(current).EntityID())
}
