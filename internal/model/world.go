package model

// Area represents a named region within a world
type Area struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Type        string            `json:"type,omitempty"`
	Description string            `json:"description,omitempty"`
	Boundary    map[string]any    `json:"boundary,omitempty"` // GeoJSON geometry
	POIs        []PointOfInterest `json:"pois,omitempty"`
}

// PointOfInterest represents a notable place within a world or area
type PointOfInterest struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Type        string         `json:"type,omitempty"`
	Description string         `json:"description,omitempty"`
	Location    map[string]any `json:"location,omitempty"` // GeoJSON geometry
}

// World represents a game world owned by a single subject.
// ItemIDs are weak references; a listed item may have been deleted.
type World struct {
	Meta
	Name        string            `json:"name"`
	Type        string            `json:"type,omitempty"`
	Description string            `json:"description,omitempty"`
	Areas       []Area            `json:"areas,omitempty"`
	POIs        []PointOfInterest `json:"pois,omitempty"`
	MapImage    string            `json:"map_image,omitempty"`
	ItemIDs     []string          `json:"item_ids,omitempty"`
}

// Validate checks the world fields and returns any validation failures
func (w World) Validate() []FieldError {
	var errs []FieldError
	if w.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if len(w.Name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name exceeds maximum length"})
	}
	if len(w.Description) > MaxDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "description exceeds maximum length"})
	}
	for _, a := range w.Areas {
		if a.Name == "" {
			errs = append(errs, FieldError{Field: "areas", Message: "area name is required"})
			break
		}
	}
	for _, p := range w.POIs {
		if p.Name == "" {
			errs = append(errs, FieldError{Field: "pois", Message: "point of interest name is required"})
			break
		}
	}
	return errs
}

// WorldPatch is a partial update to a world
type WorldPatch struct {
	Name        *string            `json:"name,omitempty"`
	Type        *string            `json:"type,omitempty"`
	Description *string            `json:"description,omitempty"`
	Areas       *[]Area            `json:"areas,omitempty"`
	POIs        *[]PointOfInterest `json:"pois,omitempty"`
	MapImage    *string            `json:"map_image,omitempty"`
	ItemIDs     *[]string          `json:"item_ids,omitempty"`
}

// Changes returns the supplied fields keyed by their stored names
func (p WorldPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Type != nil {
		changes["type"] = *p.Type
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Areas != nil {
		changes["areas"] = *p.Areas
	}
	if p.POIs != nil {
		changes["pois"] = *p.POIs
	}
	if p.MapImage != nil {
		changes["map_image"] = *p.MapImage
	}
	if p.ItemIDs != nil {
		changes["item_ids"] = *p.ItemIDs
	}
	return changes
}

// Validate checks the supplied fields and returns any validation failures
func (p WorldPatch) Validate() []FieldError {
	var errs []FieldError
	if p.Name != nil && *p.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	if p.Name != nil && len(*p.Name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name exceeds maximum length"})
	}
	if p.Description != nil && len(*p.Description) > MaxDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "description exceeds maximum length"})
	}
	return errs
}
