// Package errs defines the sentinel errors returned by varistat packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should compare with errors.Is rather than equality.
package errs

import "errors"

// Input errors.
var (
	// ErrEmptySample is returned when an operation requires at least one observation.
	ErrEmptySample = errors.New("sample is empty")
	// ErrLengthMismatch is returned when paired slices have different lengths.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInsufficientData is returned when there are too few observations for the requested analysis.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidOption is returned when a functional option receives an out-of-range value.
	ErrInvalidOption = errors.New("invalid option")
)

// Dataset errors.
var (
	// ErrUnknownColumn is returned when a referenced column is not present in the dataset.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrNotNumeric is returned when a numeric column contains a categorical value.
	ErrNotNumeric = errors.New("column is not numeric")
	// ErrNotCategorical is returned when a factor column contains a numeric value.
	ErrNotCategorical = errors.New("column is not categorical")
	// ErrDuplicateColumn is returned when a header names the same column twice.
	ErrDuplicateColumn = errors.New("duplicate column")
)

// Model errors.
var (
	// ErrSingularDesign is returned when the regression design matrix is not of full rank.
	ErrSingularDesign = errors.New("design matrix is singular")
	// ErrNoTerms is returned when a regression is requested without any model terms.
	ErrNoTerms = errors.New("no model terms")
)

// Archive errors.
var (
	// ErrInvalidArchive is returned when archive bytes are truncated or carry a bad header.
	ErrInvalidArchive = errors.New("invalid sample archive")
	// ErrChecksumMismatch is returned when an archive payload does not match its checksum.
	ErrChecksumMismatch = errors.New("sample archive checksum mismatch")
)
