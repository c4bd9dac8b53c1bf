// Package errors provides the structured error handling used across rune-api.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking for the rune domain taxonomy
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("actor not found")
//	err := errors.NoFreeSlotf("%s has no free property rune slot", item.Name)
//
// Adding metadata:
//
//	err := errors.IncompatibleTarget("rune cannot be etched here").
//	    WithMeta("rune", runeSlug).
//	    WithMeta("target_id", targetID)
//
// Wrapping errors:
//
//	if _, err := repo.GetActor(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load actor")
//	}
//
// # Error Checking
//
// Every failure in the rune engine maps to a code; callers branch on the
// typed helpers rather than on message text:
//
//	if errors.IsNoFreeSlot(err) {
//	    // offer eviction
//	}
//	if errors.IsCatalogUnavailable(err) {
//	    // degraded mode, fall back to the built-in tables
//	}
package errors
