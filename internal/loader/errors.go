package loader

import "errors"

// Load failure sentinels. Errors returned by a Source wrap one of these.
var (
	ErrNetwork           = errors.New("network failure")
	ErrMalformedResponse = errors.New("malformed response")
	ErrAlreadyStarted    = errors.New("load already started")
)

// FailureKind classifies how a settled load ended.
type FailureKind int

const (
	// FailureNone means the load succeeded with at least one record.
	FailureNone FailureKind = iota
	// FailureEmpty means the load succeeded with no records.
	FailureEmpty
	// FailureNetwork means the request could not be completed.
	FailureNetwork
	// FailureMalformed means the response body had the wrong shape.
	FailureMalformed
)

// String returns a short label for the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureEmpty:
		return "empty"
	case FailureNetwork:
		return "network"
	case FailureMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// IsError reports whether the kind represents a failed fetch rather than a result.
func (k FailureKind) IsError() bool {
	return k == FailureNetwork || k == FailureMalformed
}

// Classify maps a fetch error and record count to a FailureKind.
// Errors that are neither network nor malformed (including cancellation) count as network failures.
func Classify(err error, recordCount int) FailureKind {
	switch {
	case err == nil && recordCount == 0:
		return FailureEmpty
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrMalformedResponse):
		return FailureMalformed
	default:
		return FailureNetwork
	}
}
