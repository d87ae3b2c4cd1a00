// Package errors provides error handling for unity-assets.
//
// It re-exports github.com/cockroachdb/errors so that every package gets
// stack traces, wrapping and user-facing hints from a single import:
//
//	if err := writeManifest(); err != nil {
//	    return errors.Wrap(err, "writing manifest")
//	}
//
//	return errors.WithHint(errors.ErrConfiguration, "set UNITY_PATH")
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping.
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing hints and details.
var (
	WithHint       = crdb.WithHint
	WithHintf      = crdb.WithHintf
	WithDetail     = crdb.WithDetail
	WithDetailf    = crdb.WithDetailf
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Inspection.
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors. Wrap them to add context; test with errors.Is.
var (
	// ErrConfiguration marks run-fatal setup problems such as an editor
	// executable that cannot be resolved.
	ErrConfiguration = New("configuration error")

	// ErrUnknownKind marks an asset whose type tag has no generator.
	ErrUnknownKind = New("unknown asset kind")

	// ErrValidation marks an asset spec that failed validation.
	ErrValidation = New("validation failed")
)

// IsConfigurationError reports whether err is or wraps ErrConfiguration.
func IsConfigurationError(err error) bool {
	return err != nil && Is(err, ErrConfiguration)
}

// IsUnknownKind reports whether err is or wraps ErrUnknownKind.
func IsUnknownKind(err error) bool {
	return err != nil && Is(err, ErrUnknownKind)
}
