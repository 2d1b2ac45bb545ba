package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// A durable key with no value is reported with this error;
	// stores treat it as a valid empty state, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Augmentation errors. Each is a distinct kind so callers can
	// prompt for configuration, fall back to the local interpretation,
	// or retry as appropriate. None of them invalidates an already
	// assembled local interpretation.

	// ErrInsightKeyMissing indicates augmentation was requested without
	// a usable service credential. Raised before any network attempt.
	ErrInsightKeyMissing = errors.New("insight service credential missing")

	// ErrInsightEmpty indicates the narrative service returned an
	// empty response body.
	ErrInsightEmpty = errors.New("empty insight response")

	// ErrInsightMalformed indicates the narrative service response did
	// not parse as the required schema.
	ErrInsightMalformed = errors.New("malformed insight response")
)
