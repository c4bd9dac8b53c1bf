package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsPermissionDenied checks if an error is a permission denied error
func IsPermissionDenied(err error) bool {
	return GetCode(err) == CodePermissionDenied
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsAborted checks if an error is an aborted error
func IsAborted(err error) bool {
	return GetCode(err) == CodeAborted
}

// Domain type checks

// IsIncompatibleTarget checks if an error is an incompatible target error
func IsIncompatibleTarget(err error) bool {
	return GetCode(err) == CodeIncompatibleTarget
}

// IsNoFreeSlot checks if an error is a no free slot error
func IsNoFreeSlot(err error) bool {
	return GetCode(err) == CodeNoFreeSlot
}

// IsUnresolvedRune checks if an error is an unresolved rune error
func IsUnresolvedRune(err error) bool {
	return GetCode(err) == CodeUnresolvedRune
}

// IsInsufficientFunds checks if an error is an insufficient funds error
func IsInsufficientFunds(err error) bool {
	return GetCode(err) == CodeInsufficientFunds
}

// IsCatalogUnavailable checks if an error is a catalog unavailable error
func IsCatalogUnavailable(err error) bool {
	return GetCode(err) == CodeCatalogUnavailable
}
