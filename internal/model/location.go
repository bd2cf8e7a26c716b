package model

// Location represents a place within a world.
// WorldID, exit targets, ItemIDs, and NPCIDs are weak references; deleting
// the referenced records leaves these ids dangling.
type Location struct {
	Meta
	WorldID     string            `json:"world_id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	GMNotes     string            `json:"gm_notes,omitempty"`
	Exits       map[string]string `json:"exits,omitempty"` // direction -> location id
	ItemIDs     []string          `json:"item_ids,omitempty"`
	NPCIDs      []string          `json:"npc_ids,omitempty"`
}

// Validate checks the location fields and returns any validation failures
func (l Location) Validate() []FieldError {
	var errs []FieldError
	if l.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if len(l.Name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name exceeds maximum length"})
	}
	for direction := range l.Exits {
		if direction == "" {
			errs = append(errs, FieldError{Field: "exits", Message: "exit direction cannot be empty"})
			break
		}
	}
	return errs
}

// LocationPatch is a partial update to a location
type LocationPatch struct {
	WorldID     *string            `json:"world_id,omitempty"`
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	GMNotes     *string            `json:"gm_notes,omitempty"`
	Exits       *map[string]string `json:"exits,omitempty"`
	ItemIDs     *[]string          `json:"item_ids,omitempty"`
	NPCIDs      *[]string          `json:"npc_ids,omitempty"`
}

// Changes returns the supplied fields keyed by their stored names
func (p LocationPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.WorldID != nil {
		changes["world_id"] = *p.WorldID
	}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.GMNotes != nil {
		changes["gm_notes"] = *p.GMNotes
	}
	if p.Exits != nil {
		changes["exits"] = *p.Exits
	}
	if p.ItemIDs != nil {
		changes["item_ids"] = *p.ItemIDs
	}
	if p.NPCIDs != nil {
		changes["npc_ids"] = *p.NPCIDs
	}
	return changes
}

// Validate checks the supplied fields and returns any validation failures
func (p LocationPatch) Validate() []FieldError {
	var errs []FieldError
	if p.Name != nil && *p.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	if p.Exits != nil {
		for direction := range *p.Exits {
			if direction == "" {
				errs = append(errs, FieldError{Field: "exits", Message: "exit direction cannot be empty"})
				break
			}
		}
	}
	return errs
}
