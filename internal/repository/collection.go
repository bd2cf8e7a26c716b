package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/forgo/realmkeep/internal/database"
)

// Collection provides document CRUD for one SurrealDB table.
// The type parameter is the entity struct stored in the table.
type Collection[T any] struct {
	db    database.Database
	table string
}

// NewCollection binds an entity type to a table
func NewCollection[T any](db database.Database, table string) *Collection[T] {
	return &Collection[T]{
		db:    db,
		table: table,
	}
}

// Table returns the table name the collection is bound to
func (c *Collection[T]) Table() string {
	return c.table
}

// Get fetches a record by id. It returns (nil, nil) when the record is
// absent or the id names a different table.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	rid, ok := c.recordID(id)
	if !ok {
		return nil, nil
	}

	result, err := c.db.QueryOne(ctx, "SELECT * FROM type::record($id)", map[string]interface{}{
		"id": rid,
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", c.table, err)
	}

	raw, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return c.decode(raw)
}

// QueryByOwner returns every record in the table whose owner_id matches.
// Order is unspecified. Rows that fail to decode are skipped.
func (c *Collection[T]) QueryByOwner(ctx context.Context, ownerID string) ([]T, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE owner_id = $owner_id", c.table)
	result, err := c.db.Query(ctx, query, map[string]interface{}{
		"owner_id": ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("query %s by owner: %w", c.table, err)
	}

	rows, ok := extractQueryResults(result)
	if !ok {
		return []T{}, nil
	}

	entities := make([]T, 0, len(rows))
	for _, row := range rows {
		raw, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		entity, err := c.decode(raw)
		if err != nil {
			continue
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// Create inserts the entity and returns the store-assigned record id.
// Any id on the entity is discarded; timestamps are stamped here.
func (c *Collection[T]) Create(ctx context.Context, entity *T) (string, error) {
	doc, err := toDocument(entity)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", c.table, err)
	}
	delete(doc, "id")

	now := time.Now().UTC().Format(time.RFC3339Nano)
	doc["created_at"] = now
	doc["updated_at"] = now

	result, err := c.db.QueryOne(ctx, fmt.Sprintf("CREATE %s CONTENT $data", c.table), map[string]interface{}{
		"data": doc,
	})
	if err != nil {
		return "", fmt.Errorf("create %s: %w", c.table, err)
	}

	raw, ok := result.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("create %s: unexpected result shape", c.table)
	}
	id := convertSurrealID(raw["id"])
	if id == "" {
		return "", fmt.Errorf("create %s: missing record id", c.table)
	}
	return id, nil
}

// Update merges the supplied fields into the record and returns the record
// after the merge. It returns (nil, nil) when the record is absent.
func (c *Collection[T]) Update(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	rid, ok := c.recordID(id)
	if !ok {
		return nil, nil
	}

	doc, err := toDocument(fields)
	if err != nil {
		return nil, fmt.Errorf("encode %s fields: %w", c.table, err)
	}
	doc["updated_at"] = time.Now().UTC().Format(time.RFC3339Nano)

	result, err := c.db.QueryOne(ctx, "UPDATE type::record($id) MERGE $data RETURN AFTER", map[string]interface{}{
		"id":   rid,
		"data": doc,
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update %s: %w", c.table, err)
	}

	raw, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return c.decode(raw)
}

// Delete removes a record by id. It reports false when nothing was removed.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	rid, ok := c.recordID(id)
	if !ok {
		return false, nil
	}

	_, err := c.db.QueryOne(ctx, "DELETE type::record($id) RETURN BEFORE", map[string]interface{}{
		"id": rid,
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete %s: %w", c.table, err)
	}
	return true, nil
}

// recordID normalizes an id to this collection's table. A bare id gets the
// table prefix; an id naming another table is rejected.
func (c *Collection[T]) recordID(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	if i := strings.IndexByte(id, ':'); i >= 0 {
		if id[:i] != c.table {
			return "", false
		}
		return id, true
	}
	return c.table + ":" + id, true
}

// decode maps a raw store row onto the entity struct, normalizing the
// record id to its string form first
func (c *Collection[T]) decode(raw map[string]interface{}) (*T, error) {
	rec := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		rec[k] = v
	}
	if idVal, ok := raw["id"]; ok {
		rec["id"] = convertSurrealID(idVal)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s row: %w", c.table, err)
	}
	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, fmt.Errorf("decode %s row: %w", c.table, err)
	}
	return &entity, nil
}
