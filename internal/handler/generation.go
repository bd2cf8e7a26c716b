package handler

import (
	"context"
	"net/http"

	"github.com/forgo/realmkeep/internal/middleware"
	"github.com/forgo/realmkeep/internal/model"
)

// Generator produces narrative text, implemented by service.GenerationService
type Generator interface {
	Generate(ctx context.Context, prompt string, history []model.Message) (string, error)
}

// GenerationHandler handles text generation endpoints
type GenerationHandler struct {
	generationService Generator
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generationService Generator) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
	}
}

// Generate handles POST /v1/generate
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	subjectID := middleware.GetSubjectID(r.Context())
	if subjectID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.GenerateRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	text, err := h.generationService.Generate(r.Context(), req.Prompt, req.History)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, model.GenerateResponse{Response: text})
}
