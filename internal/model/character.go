package model

// Character kinds
const (
	CharacterKindPC  = "pc"
	CharacterKindNPC = "npc"
)

// ItemRef is a weak reference to an item with a quantity
type ItemRef struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Character represents a player character or NPC.
// CurrentLocationID and CampaignID are weak references; they may point at
// records that no longer exist.
type Character struct {
	Meta
	Name              string            `json:"name"`
	Kind              string            `json:"kind,omitempty"` // pc, npc
	Description       string            `json:"description,omitempty"`
	Backstory         string            `json:"backstory,omitempty"`
	Race              string            `json:"race,omitempty"`
	Class             string            `json:"class,omitempty"`
	Level             int               `json:"level,omitempty"`
	XP                int               `json:"xp,omitempty"`
	Alignment         string            `json:"alignment,omitempty"`
	Stats             map[string]int    `json:"stats,omitempty"`
	Skills            map[string]int    `json:"skills,omitempty"`
	SavingThrows      map[string]int    `json:"saving_throws,omitempty"`
	Inventory         []ItemRef         `json:"inventory,omitempty"`
	Equipment         map[string]string `json:"equipment,omitempty"` // slot -> item id
	Abilities         []string          `json:"abilities,omitempty"`
	Spells            []string          `json:"spells,omitempty"`
	StatusEffects     []string          `json:"status_effects,omitempty"`
	CurrentLocationID string            `json:"current_location_id,omitempty"`
	CampaignID        string            `json:"campaign_id,omitempty"`
}

// IsValidCharacterKind returns true for a recognized character kind
func IsValidCharacterKind(kind string) bool {
	return kind == CharacterKindPC || kind == CharacterKindNPC
}

// Validate checks the character fields and returns any validation failures
func (c Character) Validate() []FieldError {
	var errs []FieldError
	if c.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if len(c.Name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name exceeds maximum length"})
	}
	if c.Kind != "" && !IsValidCharacterKind(c.Kind) {
		errs = append(errs, FieldError{Field: "kind", Message: "kind must be 'pc' or 'npc'"})
	}
	if c.Level < 0 {
		errs = append(errs, FieldError{Field: "level", Message: "level cannot be negative"})
	}
	if c.XP < 0 {
		errs = append(errs, FieldError{Field: "xp", Message: "xp cannot be negative"})
	}
	for _, ref := range c.Inventory {
		if ref.Quantity < 0 {
			errs = append(errs, FieldError{Field: "inventory", Message: "quantity cannot be negative"})
			break
		}
	}
	return errs
}

// CharacterPatch is a partial update to a character
type CharacterPatch struct {
	Name              *string            `json:"name,omitempty"`
	Kind              *string            `json:"kind,omitempty"`
	Description       *string            `json:"description,omitempty"`
	Backstory         *string            `json:"backstory,omitempty"`
	Race              *string            `json:"race,omitempty"`
	Class             *string            `json:"class,omitempty"`
	Level             *int               `json:"level,omitempty"`
	XP                *int               `json:"xp,omitempty"`
	Alignment         *string            `json:"alignment,omitempty"`
	Stats             *map[string]int    `json:"stats,omitempty"`
	Skills            *map[string]int    `json:"skills,omitempty"`
	SavingThrows      *map[string]int    `json:"saving_throws,omitempty"`
	Inventory         *[]ItemRef         `json:"inventory,omitempty"`
	Equipment         *map[string]string `json:"equipment,omitempty"`
	Abilities         *[]string          `json:"abilities,omitempty"`
	Spells            *[]string          `json:"spells,omitempty"`
	StatusEffects     *[]string          `json:"status_effects,omitempty"`
	CurrentLocationID *string            `json:"current_location_id,omitempty"`
	CampaignID        *string            `json:"campaign_id,omitempty"`
}

// Changes returns the supplied fields keyed by their stored names
func (p CharacterPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Kind != nil {
		changes["kind"] = *p.Kind
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Backstory != nil {
		changes["backstory"] = *p.Backstory
	}
	if p.Race != nil {
		changes["race"] = *p.Race
	}
	if p.Class != nil {
		changes["class"] = *p.Class
	}
	if p.Level != nil {
		changes["level"] = *p.Level
	}
	if p.XP != nil {
		changes["xp"] = *p.XP
	}
	if p.Alignment != nil {
		changes["alignment"] = *p.Alignment
	}
	if p.Stats != nil {
		changes["stats"] = *p.Stats
	}
	if p.Skills != nil {
		changes["skills"] = *p.Skills
	}
	if p.SavingThrows != nil {
		changes["saving_throws"] = *p.SavingThrows
	}
	if p.Inventory != nil {
		changes["inventory"] = *p.Inventory
	}
	if p.Equipment != nil {
		changes["equipment"] = *p.Equipment
	}
	if p.Abilities != nil {
		changes["abilities"] = *p.Abilities
	}
	if p.Spells != nil {
		changes["spells"] = *p.Spells
	}
	if p.StatusEffects != nil {
		changes["status_effects"] = *p.StatusEffects
	}
	if p.CurrentLocationID != nil {
		changes["current_location_id"] = *p.CurrentLocationID
	}
	if p.CampaignID != nil {
		changes["campaign_id"] = *p.CampaignID
	}
	return changes
}

// Validate checks the supplied fields and returns any validation failures
func (p CharacterPatch) Validate() []FieldError {
	var errs []FieldError
	if p.Name != nil && *p.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	if p.Kind != nil && *p.Kind != "" && !IsValidCharacterKind(*p.Kind) {
		errs = append(errs, FieldError{Field: "kind", Message: "kind must be 'pc' or 'npc'"})
	}
	if p.Level != nil && *p.Level < 0 {
		errs = append(errs, FieldError{Field: "level", Message: "level cannot be negative"})
	}
	if p.XP != nil && *p.XP < 0 {
		errs = append(errs, FieldError{Field: "xp", Message: "xp cannot be negative"})
	}
	return errs
}
