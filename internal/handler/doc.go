// Package handler provides HTTP request handlers for the Realmkeep API.
//
// The handler package contains all HTTP endpoint implementations. The five
// entity kinds share one generic ResourceHandler; worlds, campaigns, and
// text generation add their own handlers for the operations that go beyond
// plain CRUD.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Every resource endpoint requires a bearer token. The auth middleware
// verifies it and makes the subject available via middleware.GetSubjectID.
// A record another subject owns is served exactly like a record that does
// not exist.
//
// # Example Usage
//
//	worlds := handler.NewResourceHandler[model.World, model.WorldPatch]("world", "/v1/worlds", worldResource)
//	worlds.Register(mux, authn)
package handler
