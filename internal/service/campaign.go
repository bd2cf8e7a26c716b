package service

import (
	"context"
	"fmt"
	"time"

	"github.com/forgo/realmkeep/internal/model"
)

// CampaignService handles campaign operations beyond plain CRUD
type CampaignService struct {
	campaigns *Resource[model.Campaign, *model.Campaign]
	now       func() time.Time
}

// CampaignServiceConfig holds CampaignService dependencies
type CampaignServiceConfig struct {
	Campaigns *Resource[model.Campaign, *model.Campaign]

	// Now overrides the event clock; defaults to time.Now
	Now func() time.Time
}

// NewCampaignService creates a new campaign service
func NewCampaignService(cfg CampaignServiceConfig) *CampaignService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &CampaignService{
		campaigns: cfg.Campaigns,
		now:       now,
	}
}

// AppendEvent appends a timestamped entry to the campaign's event log.
// The campaign must exist and belong to the subject.
func (s *CampaignService) AppendEvent(ctx context.Context, subjectID, campaignID, summary string) (*model.Campaign, error) {
	if summary == "" {
		return nil, ErrEventSummaryRequired
	}

	campaign, err := s.campaigns.Get(ctx, subjectID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("append event: %w", err)
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	events := make([]model.CampaignEvent, 0, len(campaign.Events)+1)
	events = append(events, campaign.Events...)
	events = append(events, model.CampaignEvent{
		At:      s.now().UTC(),
		Summary: summary,
	})

	updated, err := s.campaigns.Update(ctx, subjectID, campaignID, model.RawPatch{"events": events})
	if err != nil {
		return nil, fmt.Errorf("append event: %w", err)
	}
	if updated == nil {
		return nil, ErrCampaignNotFound
	}
	return updated, nil
}
