package analytics

import "github.com/cockroachdb/errors"

// Error taxonomy for report building. Callers classify failures with
// errors.Is against these sentinels; wrapping preserves the mark.
var (
	// ErrSource marks upstream fetch failures. Fatal for the request and
	// surfaced to the caller unchanged; retrying is the source's business.
	ErrSource = errors.New("match source unavailable")

	// ErrData marks a malformed individual match record. Recovered
	// locally: the record is dropped and counted, never aborting a batch.
	ErrData = errors.New("malformed match record")

	// ErrInsufficientData is returned when zero usable matches remain
	// after normalization. Distinct from a generic failure so the caller
	// can render "not enough data".
	ErrInsufficientData = errors.New("insufficient match data")

	// ErrNarrative marks narrative-generation failures. Degraded, not
	// fatal: the numeric profile is still returned.
	ErrNarrative = errors.New("narrative generation failed")
)
