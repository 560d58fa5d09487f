// Package errors provides error handling for glyphgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints surfaced to the user alongside the failing stage
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "check that the catalog directory exists")
//
//	// Check errors
//	if errors.Is(err, errors.ErrDuplicateIcon) {
//	    // handle catalog collision
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll

	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the pipeline's failure taxonomy. Every stage error
// wraps one of these so callers can classify a failed run with errors.Is()
// without parsing message text.
var (
	// ErrCatalogUnavailable indicates the icon catalog could not be read or fetched
	ErrCatalogUnavailable = New("catalog unavailable")

	// ErrDuplicateIcon indicates two catalog entries normalize to the same identifier
	ErrDuplicateIcon = New("duplicate icon identifier")

	// ErrGeneratorFailed indicates the generation program produced no usable artifact
	ErrGeneratorFailed = New("generator failed")

	// ErrArtifactMissing indicates the generator reported success but left no output file
	ErrArtifactMissing = New("generated artifact missing")

	// ErrDestinationUnwritable indicates the canonical source location cannot be replaced
	ErrDestinationUnwritable = New("destination unwritable")

	// ErrNormalizeFailed indicates the formatter rejected the relocated artifact
	ErrNormalizeFailed = New("normalization failed")

	// ErrValidationFailed indicates the consuming project did not type-check
	ErrValidationFailed = New("validation failed")

	// ErrVersionConstraint indicates the catalog manifest requires a newer tool
	ErrVersionConstraint = New("tool version constraint not satisfied")
)

// IsGenerationError reports whether err belongs to the generation stage's
// failure class (catalog problems, duplicate identifiers, generator crash).
func IsGenerationError(err error) bool {
	return err != nil && IsAny(err, ErrCatalogUnavailable, ErrDuplicateIcon, ErrGeneratorFailed, ErrVersionConstraint)
}

// IsRelocationError reports whether err belongs to the relocation stage's
// failure class.
func IsRelocationError(err error) bool {
	return err != nil && IsAny(err, ErrArtifactMissing, ErrDestinationUnwritable)
}

// IsValidationError reports whether err is a validation gate failure.
func IsValidationError(err error) bool {
	return err != nil && Is(err, ErrValidationFailed)
}

// WrapDuplicate wraps an error as a duplicate-identifier error with context
func WrapDuplicate(err error, context string) error {
	return Wrap(Wrap(ErrDuplicateIcon, err.Error()), context)
}

// NewCatalogError creates a catalog-unavailable error with a formatted message
func NewCatalogError(format string, args ...interface{}) error {
	return Wrap(ErrCatalogUnavailable, Newf(format, args...).Error())
}
