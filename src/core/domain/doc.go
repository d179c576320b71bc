// Package domain contains the core domain model for the draft.
//
// This package defines:
//   - Entities: Castaway, Prediction, User
//   - Domain Errors: business rule violation errors
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//
// Nullable columns (a castaway's actual_rank, a user's predicted rank in a
// merged picks view) are modeled as explicit *int fields. All null filtering
// happens before any arithmetic; nothing here relies on implicit coercion.
package domain
