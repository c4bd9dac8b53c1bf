package errors

// Code represents an error code
type Code string

// General error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Rune domain error codes. These carry the failure taxonomy of the etching
// engine: every one of them is surfaced to the user as a warning, never as a
// crash.
const (
	// CodeIncompatibleTarget is returned when the compatibility evaluator
	// rejects a (rune, target) pair.
	CodeIncompatibleTarget Code = "INCOMPATIBLE_TARGET"

	// CodeNoFreeSlot is returned when a property rune has nowhere to go and
	// no eviction was confirmed.
	CodeNoFreeSlot Code = "NO_FREE_SLOT"

	// CodeUnresolvedRune is returned when an item looks like a property rune
	// but no catalog or fallback mapping exists for the target's category.
	CodeUnresolvedRune Code = "UNRESOLVED_RUNE"

	// CodeInsufficientFunds is returned when a transfer cost exceeds the
	// chosen payment source's balance.
	CodeInsufficientFunds Code = "INSUFFICIENT_FUNDS"

	// CodeCatalogUnavailable marks degraded-mode catalog access. It is not a
	// user-facing failure by itself; callers fall back to the built-in
	// tables and only surface it when resolution actually fails.
	CodeCatalogUnavailable Code = "CATALOG_UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
