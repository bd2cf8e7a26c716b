// Package service implements the business logic layer for the Realmkeep API.
//
// The central type is the generic Resource service, which enforces the one
// invariant the system cares about: ownership-scoped access. Every operation
// takes the authenticated subject id first, and a record that is absent and a
// record owned by someone else are deliberately indistinguishable to the
// caller; both come back as (nil, nil).
//
// # Service Pattern
//
//   - Services define their own store interfaces, implemented by the
//     repository layer
//   - All methods accept context.Context as the first parameter
//   - Errors are sentinel values from errors.go, checked with errors.Is()
//   - Store errors propagate wrapped; nothing is retried
//
// # Services
//
//   - Resource[T, PT]: generic ownership-scoped CRUD over one collection
//   - WorldService: world-specific operations (attaching items)
//   - CampaignService: campaign event log
//   - GenerationService: text generation through an OpenAI-compatible provider
//
// # Ownership Semantics
//
// Create stamps the owner from the authenticated subject, discarding any
// owner the client supplied. Get, Update, and Delete re-check ownership on
// every call; a mismatch behaves exactly like a missing record.
package service
