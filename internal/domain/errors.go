package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the navigation and form flows.
var (
	ErrUnknownPage = errors.New("unknown page")
	ErrNoApp       = errors.New("no application state for this visitor")

	// ErrValidation indicates a submit was refused because at least one field failed validation.
	ErrValidation = errors.New("form has invalid fields")

	// ErrSubmissionFailed is the general (non-field) failure of a submission round trip.
	// The simulated round trip never produces it.
	ErrSubmissionFailed = errors.New("submission failed")

	ErrSubmitInFlight   = errors.New("a submission is already in progress")
	ErrAlreadySubmitted = errors.New("form was already submitted")

	// ErrFormDiscarded is returned when an operation targets a form whose page was navigated away from.
	ErrFormDiscarded = errors.New("form was discarded")
	ErrNoForm        = errors.New("current page has no form")
)
