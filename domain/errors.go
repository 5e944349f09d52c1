// ABOUTME: Domain-level sentinel errors for the scoop-harvester service
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Feed-related errors
var (
	// ErrAllFeedsUnavailable indicates every configured feed failed to fetch or parse.
	// Fatal for a run: no records may be created when nothing could be read.
	ErrAllFeedsUnavailable = errors.New("all configured feeds unavailable")

	// ErrNoPublishTimestamp indicates a feed entry carries no determinable
	// publication time and cannot be placed in the ingestion window.
	ErrNoPublishTimestamp = errors.New("feed entry has no determinable publish timestamp")
)

// Generation errors
var (
	// ErrGenerationParseFailure indicates no parsing strategy could recover a
	// structured result from the completion reply. Recovered locally with a
	// degraded variant set; never escalates past the generator.
	ErrGenerationParseFailure = errors.New("completion reply could not be parsed")

	// ErrCompletionUnavailable indicates the completion service is not reachable
	// or returned a non-success status.
	ErrCompletionUnavailable = errors.New("completion service unavailable")
)

// Location errors
var (
	// ErrPlaceNotFound indicates the geocoder returned no match for a place name.
	// Non-retryable; the resolver moves on to the next fallback stage.
	ErrPlaceNotFound = errors.New("place not found by geocoder")

	// ErrGeocoderUnavailable indicates a transient geocoder failure (timeout, 5xx).
	// Retryable within the resolver's attempt budget.
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
)

// Persistence errors
var (
	// ErrDuplicateScoop indicates a record for the same source URL already
	// exists at insert time. A normal Skipped outcome, not a failure.
	ErrDuplicateScoop = errors.New("scoop already exists for source URL")

	// ErrEditionUnavailable indicates the owning daily edition record could not
	// be created or located. Fatal for a run: scoops cannot be attached to it.
	ErrEditionUnavailable = errors.New("daily edition unavailable")
)
