package transport

import "strings"

// FailureKind is a best-effort category for a failure, used to label report
// entries and diagnostics.
type FailureKind string

const (
	FailureUnauthorized FailureKind = "unauthorized"
	FailureTimeout      FailureKind = "timeout"
	FailureNotFound     FailureKind = "not_found"
	FailureInvalid      FailureKind = "invalid_input"
	FailureUnknown      FailureKind = "unknown"
)

// Classify guesses the category of a failure from its message text. The
// bridge exposes no structured error codes, so this matches phrases the
// backend is known to emit ("Unauthorized", "access token", ...). The
// result labels report entries and lets connectivity probes recognize an
// expected auth rejection; all heuristic matching is confined here.
func Classify(f *Failure) FailureKind {
	if f == nil {
		return FailureUnknown
	}
	msg := strings.ToLower(f.Message)
	switch {
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "access token"):
		return FailureUnauthorized
	case strings.Contains(msg, "timed out"):
		return FailureTimeout
	case strings.Contains(msg, "not found"), strings.Contains(msg, "does not exist"):
		return FailureNotFound
	case strings.Contains(msg, "invalid"), strings.Contains(msg, "bad request"):
		return FailureInvalid
	default:
		return FailureUnknown
	}
}
