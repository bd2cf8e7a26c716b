// Package repository implements the data access layer for the Realmkeep API.
//
// The package exposes a single generic Collection type rather than one
// hand-written repository per entity. A Collection is parameterized by the
// entity struct and bound to one SurrealDB table; encoding and decoding go
// through a JSON round trip with record-id normalization, so entity structs
// only need ordinary json tags.
//
// # Collection Pattern
//
//   - NewCollection[T](db, table) binds an entity type to a table
//   - Get returns (nil, nil) when the record is absent or belongs to
//     another table
//   - Create lets the store assign the record id and returns it
//   - Update uses MERGE semantics: only the supplied fields change
//   - Delete reports whether a record was removed
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - CREATE ... CONTENT for inserts, UPDATE ... MERGE for partial updates
//
// # Example Usage
//
//	worlds := repository.NewCollection[model.World](db, "worlds")
//	world, err := worlds.Get(ctx, "worlds:abc123")
//	if err != nil {
//	    return err
//	}
//	if world == nil {
//	    // Record absent
//	}
package repository
