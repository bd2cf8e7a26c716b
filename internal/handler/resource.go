package handler

import (
	"context"
	"net/http"

	"github.com/forgo/realmkeep/internal/middleware"
	"github.com/forgo/realmkeep/internal/model"
)

// ResourceService is the ownership-scoped CRUD surface a resource handler
// runs on, implemented by service.Resource
type ResourceService[T any] interface {
	Create(ctx context.Context, subjectID string, entity *T) (*T, error)
	Get(ctx context.Context, subjectID, id string) (*T, error)
	List(ctx context.Context, subjectID string) ([]T, error)
	Update(ctx context.Context, subjectID, id string, patch model.Patch) (*T, error)
	Delete(ctx context.Context, subjectID, id string) (bool, error)
}

// ResourceHandler serves the CRUD endpoints for one entity kind. T is the
// entity and P its patch type. Records the subject does not own are served
// exactly like records that do not exist.
type ResourceHandler[T model.Entity, P model.Patch] struct {
	kind string
	path string
	svc  ResourceService[T]
}

// NewResourceHandler creates a resource handler. kind names the entity in
// error responses ("world"); path is the collection route ("/v1/worlds").
func NewResourceHandler[T model.Entity, P model.Patch](kind, path string, svc ResourceService[T]) *ResourceHandler[T, P] {
	return &ResourceHandler[T, P]{
		kind: kind,
		path: path,
		svc:  svc,
	}
}

// Register wires the handler's routes into the mux, wrapping each in the
// given authentication middleware
func (h *ResourceHandler[T, P]) Register(mux *http.ServeMux, authn func(http.Handler) http.Handler) {
	mux.Handle("POST "+h.path, authn(http.HandlerFunc(h.Create)))
	mux.Handle("GET "+h.path, authn(http.HandlerFunc(h.List)))
	mux.Handle("GET "+h.path+"/{id}", authn(http.HandlerFunc(h.Get)))
	mux.Handle("PATCH "+h.path+"/{id}", authn(http.HandlerFunc(h.Update)))
	mux.Handle("PUT "+h.path+"/{id}", authn(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE "+h.path+"/{id}", authn(http.HandlerFunc(h.Delete)))
}

// Create handles POST {path}
func (h *ResourceHandler[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	subjectID := middleware.GetSubjectID(r.Context())
	if subjectID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var entity T
	if err := DecodeJSON(r, &entity); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := entity.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	created, err := h.svc.Create(r.Context(), subjectID, &entity)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, created, h.links((*created).EntityID()))
}

// List handles GET {path}
func (h *ResourceHandler[T, P]) List(w http.ResponseWriter, r *http.Request) {
	subjectID := middleware.GetSubjectID(r.Context())
	if subjectID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	entities, err := h.svc.List(r.Context(), subjectID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, entities, map[string]string{
		"self": h.path,
	})
}

// Get handles GET {path}/{id}
func (h *ResourceHandler[T, P]) Get(w http.ResponseWriter, r *http.Request) {
	subjectID := middleware.GetSubjectID(r.Context())
	if subjectID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	entity, err := h.svc.Get(r.Context(), subjectID, r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if entity == nil {
		WriteError(w, model.NewNotFoundError(h.kind))
		return
	}

	WriteData(w, http.StatusOK, entity, h.links((*entity).EntityID()))
}

// Update handles PATCH {path}/{id} and PUT {path}/{id}. Both merge the
// supplied fields; omitted fields keep their stored values.
func (h *ResourceHandler[T, P]) Update(w http.ResponseWriter, r *http.Request) {
	subjectID := middleware.GetSubjectID(r.Context())
	if subjectID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var patch P
	if err := DecodeLenientJSON(r, &patch); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := patch.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	entity, err := h.svc.Update(r.Context(), subjectID, r.PathValue("id"), patch)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if entity == nil {
		WriteError(w, model.NewNotFoundError(h.kind))
		return
	}

	WriteData(w, http.StatusOK, entity, h.links((*entity).EntityID()))
}

// Delete handles DELETE {path}/{id}
func (h *ResourceHandler[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	subjectID := middleware.GetSubjectID(r.Context())
	if subjectID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	removed, err := h.svc.Delete(r.Context(), subjectID, r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if !removed {
		WriteError(w, model.NewNotFoundError(h.kind))
		return
	}

	WriteNoContent(w)
}

func (h *ResourceHandler[T, P]) links(id string) map[string]string {
	return map[string]string{
		"self":       h.path + "/" + id,
		"collection": h.path,
	}
}
