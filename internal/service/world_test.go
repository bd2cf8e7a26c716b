package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forgo/realmkeep/internal/model"
)

func newWorldServiceFixture() (*WorldService, *Resource[model.World, *model.World], *Resource[model.Item, *model.Item]) {
	worlds := NewResource[model.World](newMemStore[model.World, *model.World]("worlds"))
	items := NewResource[model.Item](newMemStore[model.Item, *model.Item]("items"))
	svc := NewWorldService(WorldServiceConfig{Worlds: worlds, Items: items})
	return svc, worlds, items
}

func TestWorldService_AttachItem(t *testing.T) {
	t.Parallel()

	svc, worlds, items := newWorldServiceFixture()
	ctx := context.Background()

	world, err := worlds.Create(ctx, "user-1", &model.World{Name: "Eldoria"})
	if err != nil {
		t.Fatalf("create world failed: %v", err)
	}
	item, err := items.Create(ctx, "user-1", &model.Item{Name: "Sword of Dawn"})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	updated, err := svc.AttachItem(ctx, "user-1", world.ID, item.ID)
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if len(updated.ItemIDs) != 1 || updated.ItemIDs[0] != item.ID {
		t.Errorf("expected item reference on world, got %v", updated.ItemIDs)
	}
}

func TestWorldService_AttachItem_Idempotent(t *testing.T) {
	t.Parallel()

	svc, worlds, items := newWorldServiceFixture()
	ctx := context.Background()

	world, _ := worlds.Create(ctx, "user-1", &model.World{Name: "Eldoria"})
	item, _ := items.Create(ctx, "user-1", &model.Item{Name: "Sword of Dawn"})

	if _, err := svc.AttachItem(ctx, "user-1", world.ID, item.ID); err != nil {
		t.Fatalf("first attach failed: %v", err)
	}
	updated, err := svc.AttachItem(ctx, "user-1", world.ID, item.ID)
	if err != nil {
		t.Fatalf("second attach failed: %v", err)
	}
	if len(updated.ItemIDs) != 1 {
		t.Errorf("re-attach must not duplicate the reference, got %v", updated.ItemIDs)
	}
}

func TestWorldService_AttachItem_WorldMissing(t *testing.T) {
	t.Parallel()

	svc, _, items := newWorldServiceFixture()
	ctx := context.Background()

	item, _ := items.Create(ctx, "user-1", &model.Item{Name: "Sword of Dawn"})

	_, err := svc.AttachItem(ctx, "user-1", "worlds:missing", item.ID)
	if !errors.Is(err, ErrWorldNotFound) {
		t.Errorf("expected ErrWorldNotFound, got %v", err)
	}
}

func TestWorldService_AttachItem_ForeignItemLooksAbsent(t *testing.T) {
	t.Parallel()

	svc, worlds, items := newWorldServiceFixture()
	ctx := context.Background()

	world, _ := worlds.Create(ctx, "user-1", &model.World{Name: "Eldoria"})
	foreign, _ := items.Create(ctx, "user-2", &model.Item{Name: "Stolen Dagger"})

	_, err := svc.AttachItem(ctx, "user-1", world.ID, foreign.ID)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("another subject's item must look absent, got %v", err)
	}
}

func TestWorldService_AttachItem_ForeignWorldLooksAbsent(t *testing.T) {
	t.Parallel()

	svc, worlds, items := newWorldServiceFixture()
	ctx := context.Background()

	world, _ := worlds.Create(ctx, "user-2", &model.World{Name: "Eldoria"})
	item, _ := items.Create(ctx, "user-1", &model.Item{Name: "Sword of Dawn"})

	_, err := svc.AttachItem(ctx, "user-1", world.ID, item.ID)
	if !errors.Is(err, ErrWorldNotFound) {
		t.Errorf("another subject's world must look absent, got %v", err)
	}
}
