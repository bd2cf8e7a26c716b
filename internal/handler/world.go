package handler

import (
	"context"
	"net/http"

	"github.com/forgo/realmkeep/internal/middleware"
	"github.com/forgo/realmkeep/internal/model"
)

// WorldAttacher attaches items to worlds, implemented by service.WorldService
type WorldAttacher interface {
	AttachItem(ctx context.Context, subjectID, worldID, itemID string) (*model.World, error)
}

// WorldHandler handles world endpoints beyond plain CRUD
type WorldHandler struct {
	worldService WorldAttacher
}

// NewWorldHandler creates a new world handler
func NewWorldHandler(worldService WorldAttacher) *WorldHandler {
	return &WorldHandler{
		worldService: worldService,
	}
}

// AttachItem handles PUT /v1/worlds/{worldId}/items/{itemId}. Attaching an
// already-attached item succeeds without duplicating the reference.
func (h *WorldHandler) AttachItem(w http.ResponseWriter, r *http.Request) {
	subjectID := middleware.GetSubjectID(r.Context())
	if subjectID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	world, err := h.worldService.AttachItem(r.Context(), subjectID, r.PathValue("worldId"), r.PathValue("itemId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, world, map[string]string{
		"self": "/v1/worlds/" + world.ID,
	})
}
