package model

// Item represents a game item.
// ItemSetID is a weak reference to an item set; it may be dangling. The field
// is named ItemSetID rather than SetID so it does not shadow the promoted
// Meta.SetID mutator.
type Item struct {
	Meta
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Rarity      string         `json:"rarity,omitempty"`
	Weight      float64        `json:"weight,omitempty"`
	Cost        int            `json:"cost,omitempty"`
	Bonuses     map[string]int `json:"bonuses,omitempty"` // attribute/skill -> modifier
	ItemSetID   string         `json:"set_id,omitempty"`
}

// Validate checks the item fields and returns any validation failures
func (i Item) Validate() []FieldError {
	var errs []FieldError
	if i.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if len(i.Name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name exceeds maximum length"})
	}
	if i.Weight < 0 {
		errs = append(errs, FieldError{Field: "weight", Message: "weight cannot be negative"})
	}
	if i.Cost < 0 {
		errs = append(errs, FieldError{Field: "cost", Message: "cost cannot be negative"})
	}
	return errs
}

// ItemPatch is a partial update to an item
type ItemPatch struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Rarity      *string         `json:"rarity,omitempty"`
	Weight      *float64        `json:"weight,omitempty"`
	Cost        *int            `json:"cost,omitempty"`
	Bonuses     *map[string]int `json:"bonuses,omitempty"`
	SetID       *string         `json:"set_id,omitempty"`
}

// Changes returns the supplied fields keyed by their stored names
func (p ItemPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Rarity != nil {
		changes["rarity"] = *p.Rarity
	}
	if p.Weight != nil {
		changes["weight"] = *p.Weight
	}
	if p.Cost != nil {
		changes["cost"] = *p.Cost
	}
	if p.Bonuses != nil {
		changes["bonuses"] = *p.Bonuses
	}
	if p.SetID != nil {
		changes["set_id"] = *p.SetID
	}
	return changes
}

// Validate checks the supplied fields and returns any validation failures
func (p ItemPatch) Validate() []FieldError {
	var errs []FieldError
	if p.Name != nil && *p.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	if p.Weight != nil && *p.Weight < 0 {
		errs = append(errs, FieldError{Field: "weight", Message: "weight cannot be negative"})
	}
	if p.Cost != nil && *p.Cost < 0 {
		errs = append(errs, FieldError{Field: "cost", Message: "cost cannot be negative"})
	}
	return errs
}
