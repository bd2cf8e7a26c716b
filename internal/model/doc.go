// Package model defines domain entities and data structures for the Realmkeep API.
//
// The model package contains all struct definitions for domain objects, patch
// types for partial updates, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - World: A game world with areas, points of interest, and item references
//   - Character: A player character or NPC with stats, inventory, and equipment
//   - Item: A game item with rarity, cost, and attribute bonuses
//   - Location: A place within a world with exits and contained items/NPCs
//   - Campaign: A play campaign with embedded worlds, characters, and an event log
//
// Every entity embeds Meta, which carries the store-assigned id, the owning
// subject, and creation/update timestamps. The id and owner_id fields are
// immutable after creation.
//
// # Ownership
//
// Entities belong to exactly one subject, recorded in owner_id. The field is
// set by the service layer from the authenticated subject and is never taken
// from request bodies.
//
// # Partial Updates
//
// Each entity has a companion patch type (WorldPatch, CharacterPatch, ...)
// with all-optional fields. A patch reports its supplied fields through
// Changes(), which is merged into the stored record; omitted fields are left
// untouched.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
