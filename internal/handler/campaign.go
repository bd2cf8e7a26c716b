package handler

import (
	"context"
	"net/http"

	"github.com/forgo/realmkeep/internal/middleware"
	"github.com/forgo/realmkeep/internal/model"
)

// EventAppender appends events to campaign logs, implemented by
// service.CampaignService
type EventAppender interface {
	AppendEvent(ctx context.Context, subjectID, campaignID, summary string) (*model.Campaign, error)
}

// CampaignHandler handles campaign endpoints beyond plain CRUD
type CampaignHandler struct {
	campaignService EventAppender
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService EventAppender) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// AppendEventRequest is the body for appending a campaign event
type AppendEventRequest struct {
	Summary string `json:"summary"`
}

// AppendEvent handles POST /v1/campaigns/{campaignId}/events
func (h *CampaignHandler) AppendEvent(w http.ResponseWriter, r *http.Request) {
	subjectID := middleware.GetSubjectID(r.Context())
	if subjectID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req AppendEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	campaign, err := h.campaignService.AppendEvent(r.Context(), subjectID, r.PathValue("campaignId"), req.Summary)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, campaign, map[string]string{
		"self": "/v1/campaigns/" + campaign.ID,
	})
}
