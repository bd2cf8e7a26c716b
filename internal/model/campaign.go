package model

import "time"

// CampaignEvent is one entry in a campaign's chronological event log
type CampaignEvent struct {
	At      time.Time `json:"at"`
	Summary string    `json:"summary"`
}

// Campaign represents a play campaign. Worlds and characters are embedded
// snapshots rather than references, matching how campaigns are assembled
// at the table.
type Campaign struct {
	Meta
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Ruleset     string          `json:"ruleset,omitempty"`
	Worlds      []World         `json:"worlds,omitempty"`
	Characters  []Character     `json:"characters,omitempty"`
	Events      []CampaignEvent `json:"events,omitempty"`
}

// Validate checks the campaign fields and returns any validation failures
func (c Campaign) Validate() []FieldError {
	var errs []FieldError
	if c.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if len(c.Name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name exceeds maximum length"})
	}
	return errs
}

// CampaignPatch is a partial update to a campaign
type CampaignPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Ruleset     *string          `json:"ruleset,omitempty"`
	Worlds      *[]World         `json:"worlds,omitempty"`
	Characters  *[]Character     `json:"characters,omitempty"`
	Events      *[]CampaignEvent `json:"events,omitempty"`
}

// Changes returns the supplied fields keyed by their stored names
func (p CampaignPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Ruleset != nil {
		changes["ruleset"] = *p.Ruleset
	}
	if p.Worlds != nil {
		changes["worlds"] = *p.Worlds
	}
	if p.Characters != nil {
		changes["characters"] = *p.Characters
	}
	if p.Events != nil {
		changes["events"] = *p.Events
	}
	return changes
}

// Validate checks the supplied fields and returns any validation failures
func (p CampaignPatch) Validate() []FieldError {
	var errs []FieldError
	if p.Name != nil && *p.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	return errs
}
