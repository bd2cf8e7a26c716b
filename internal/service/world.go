package service

import (
	"context"
	"fmt"

	"github.com/forgo/realmkeep/internal/model"
)

// WorldService handles world operations beyond plain CRUD
type WorldService struct {
	worlds *Resource[model.World, *model.World]
	items  *Resource[model.Item, *model.Item]
}

// WorldServiceConfig holds WorldService dependencies
type WorldServiceConfig struct {
	Worlds *Resource[model.World, *model.World]
	Items  *Resource[model.Item, *model.Item]
}

// NewWorldService creates a new world service
func NewWorldService(cfg WorldServiceConfig) *WorldService {
	return &WorldService{
		worlds: cfg.Worlds,
		items:  cfg.Items,
	}
}

// AttachItem adds an item reference to a world. Both records must exist and
// belong to the subject. Attaching an already-attached item is a no-op.
// The read and the write are separate store calls; a crash between them
// leaves the world unchanged.
func (s *WorldService) AttachItem(ctx context.Context, subjectID, worldID, itemID string) (*model.World, error) {
	world, err := s.worlds.Get(ctx, subjectID, worldID)
	if err != nil {
		return nil, fmt.Errorf("attach item: %w", err)
	}
	if world == nil {
		return nil, ErrWorldNotFound
	}

	item, err := s.items.Get(ctx, subjectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("attach item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	for _, existing := range world.ItemIDs {
		if existing == item.ID {
			return world, nil
		}
	}

	ids := make([]string, 0, len(world.ItemIDs)+1)
	ids = append(ids, world.ItemIDs...)
	ids = append(ids, item.ID)

	updated, err := s.worlds.Update(ctx, subjectID, worldID, model.RawPatch{"item_ids": ids})
	if err != nil {
		return nil, fmt.Errorf("attach item: %w", err)
	}
	if updated == nil {
		return nil, ErrWorldNotFound
	}
	return updated, nil
}
