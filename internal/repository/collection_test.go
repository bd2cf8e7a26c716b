package repository

import (
	"context"
	"testing"

	"github.com/forgo/realmkeep/internal/database"
	"github.com/forgo/realmkeep/internal/model"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// mockDatabase implements database.Database with function fields
type mockDatabase struct {
	queryFunc    func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
	queryOneFunc func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
	executeFunc  func(ctx context.Context, query string, vars map[string]interface{}) error
}

func (m *mockDatabase) Connect(ctx context.Context) error { return nil }
func (m *mockDatabase) Close() error                      { return nil }
func (m *mockDatabase) Ping(ctx context.Context) error    { return nil }

func (m *mockDatabase) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, query, vars)
	}
	return nil, nil
}

func (m *mockDatabase) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	if m.queryOneFunc != nil {
		return m.queryOneFunc(ctx, query, vars)
	}
	return nil, database.ErrNotFound
}

func (m *mockDatabase) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, query, vars)
	}
	return nil
}

// ============================================================================
// Get Tests
// ============================================================================

func TestCollection_Get_DecodesRecord(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			if vars["id"] != "worlds:abc" {
				t.Errorf("expected id var 'worlds:abc', got %v", vars["id"])
			}
			return map[string]interface{}{
				"id":       models.RecordID{Table: "worlds", ID: "abc"},
				"owner_id": "user-1",
				"name":     "Eldoria",
				"item_ids": []interface{}{"items:sword"},
			}, nil
		},
	}
	worlds := NewCollection[model.World](db, "worlds")

	world, err := worlds.Get(context.Background(), "worlds:abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if world == nil {
		t.Fatal("expected a world")
	}
	if world.ID != "worlds:abc" {
		t.Errorf("expected normalized id 'worlds:abc', got %q", world.ID)
	}
	if world.OwnerID != "user-1" {
		t.Errorf("expected owner 'user-1', got %q", world.OwnerID)
	}
	if world.Name != "Eldoria" {
		t.Errorf("expected name 'Eldoria', got %q", world.Name)
	}
	if len(world.ItemIDs) != 1 || world.ItemIDs[0] != "items:sword" {
		t.Errorf("expected item_ids ['items:sword'], got %v", world.ItemIDs)
	}
}

func TestCollection_Get_AbsentRecordReturnsNil(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			return nil, database.ErrNotFound
		},
	}
	worlds := NewCollection[model.World](db, "worlds")

	world, err := worlds.Get(context.Background(), "worlds:missing")
	if err != nil {
		t.Fatalf("absent record should not be an error, got %v", err)
	}
	if world != nil {
		t.Errorf("expected nil world, got %+v", world)
	}
}

func TestCollection_Get_ForeignTableIDRejectedWithoutQuery(t *testing.T) {
	t.Parallel()

	queried := false
	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			queried = true
			return nil, database.ErrNotFound
		},
	}
	worlds := NewCollection[model.World](db, "worlds")

	world, err := worlds.Get(context.Background(), "items:sword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if world != nil {
		t.Errorf("expected nil world for foreign table id, got %+v", world)
	}
	if queried {
		t.Error("foreign table id should be rejected before hitting the store")
	}
}

func TestCollection_Get_BareIDGetsTablePrefix(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			if vars["id"] != "worlds:abc" {
				t.Errorf("expected prefixed id 'worlds:abc', got %v", vars["id"])
			}
			return nil, database.ErrNotFound
		},
	}
	worlds := NewCollection[model.World](db, "worlds")

	if _, err := worlds.Get(context.Background(), "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ============================================================================
// QueryByOwner Tests
// ============================================================================

func TestCollection_QueryByOwner_ReturnsDecodedRows(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			if vars["owner_id"] != "user-1" {
				t.Errorf("expected owner_id var 'user-1', got %v", vars["owner_id"])
			}
			return []interface{}{
				map[string]interface{}{
					"status": "OK",
					"result": []interface{}{
						map[string]interface{}{"id": "items:sword", "owner_id": "user-1", "name": "Sword"},
						map[string]interface{}{"id": "items:shield", "owner_id": "user-1", "name": "Shield"},
					},
				},
			}, nil
		},
	}
	items := NewCollection[model.Item](db, "items")

	got, err := items.QueryByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].Name != "Sword" || got[1].Name != "Shield" {
		t.Errorf("unexpected items: %+v", got)
	}
}

func TestCollection_QueryByOwner_SkipsMalformedRows(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			return []interface{}{
				map[string]interface{}{
					"status": "OK",
					"result": []interface{}{
						"not-a-record",
						map[string]interface{}{"id": "items:sword", "owner_id": "user-1", "name": "Sword"},
					},
				},
			}, nil
		},
	}
	items := NewCollection[model.Item](db, "items")

	got, err := items.QueryByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 item after skipping malformed row, got %d", len(got))
	}
}

func TestCollection_QueryByOwner_EmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			return []interface{}{
				map[string]interface{}{"status": "OK", "result": []interface{}{}},
			}, nil
		},
	}
	items := NewCollection[model.Item](db, "items")

	got, err := items.QueryByOwner(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no items, got %v", got)
	}
}

// ============================================================================
// Create Tests
// ============================================================================

func TestCollection_Create_StampsTimestampsAndDropsID(t *testing.T) {
	t.Parallel()

	var captured map[string]interface{}
	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			captured = vars["data"].(map[string]interface{})
			return map[string]interface{}{
				"id": models.RecordID{Table: "worlds", ID: "fresh"},
			}, nil
		},
	}
	worlds := NewCollection[model.World](db, "worlds")

	world := &model.World{Name: "Eldoria"}
	world.ID = "worlds:client-chosen"

	id, err := worlds.Create(context.Background(), world)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "worlds:fresh" {
		t.Errorf("expected assigned id 'worlds:fresh', got %q", id)
	}
	if _, ok := captured["id"]; ok {
		t.Error("client-supplied id should be dropped from the create document")
	}
	if _, ok := captured["created_at"]; !ok {
		t.Error("created_at should be stamped on create")
	}
	if _, ok := captured["updated_at"]; !ok {
		t.Error("updated_at should be stamped on create")
	}
	if captured["name"] != "Eldoria" {
		t.Errorf("expected name in document, got %v", captured)
	}
}

// ============================================================================
// Update Tests
// ============================================================================

func TestCollection_Update_MergesFieldsAndStampsUpdatedAt(t *testing.T) {
	t.Parallel()

	var captured map[string]interface{}
	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			captured = vars["data"].(map[string]interface{})
			return map[string]interface{}{
				"id":       "worlds:abc",
				"owner_id": "user-1",
				"name":     "Renamed",
			}, nil
		},
	}
	worlds := NewCollection[model.World](db, "worlds")

	world, err := worlds.Update(context.Background(), "worlds:abc", map[string]interface{}{"name": "Renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if world == nil || world.Name != "Renamed" {
		t.Fatalf("expected updated world, got %+v", world)
	}
	if captured["name"] != "Renamed" {
		t.Errorf("expected name in merge document, got %v", captured)
	}
	if _, ok := captured["updated_at"]; !ok {
		t.Error("updated_at should be stamped on update")
	}
}

func TestCollection_Update_AbsentRecordReturnsNil(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			return nil, database.ErrNotFound
		},
	}
	worlds := NewCollection[model.World](db, "worlds")

	world, err := worlds.Update(context.Background(), "worlds:missing", map[string]interface{}{"name": "X"})
	if err != nil {
		t.Fatalf("absent record should not be an error, got %v", err)
	}
	if world != nil {
		t.Errorf("expected nil world, got %+v", world)
	}
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestCollection_Delete_ReportsRemoval(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"id": "worlds:abc"}, nil
		},
	}
	worlds := NewCollection[model.World](db, "worlds")

	removed, err := worlds.Delete(context.Background(), "worlds:abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Error("expected removal to be reported")
	}
}

func TestCollection_Delete_AbsentRecordReportsFalse(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			return nil, database.ErrNotFound
		},
	}
	worlds := NewCollection[model.World](db, "worlds")

	removed, err := worlds.Delete(context.Background(), "worlds:missing")
	if err != nil {
		t.Fatalf("absent record should not be an error, got %v", err)
	}
	if removed {
		t.Error("expected no removal for absent record")
	}
}

func TestCollection_Delete_ForeignTableIDReportsFalse(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{}
	worlds := NewCollection[model.World](db, "worlds")

	removed, err := worlds.Delete(context.Background(), "campaigns:xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Error("foreign table id should never delete")
	}
}
