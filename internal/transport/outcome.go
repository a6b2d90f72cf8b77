package transport

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutcomeKind discriminates the three result variants of a tool call.
type OutcomeKind int

const (
	// KindParsed means the process exited zero and stdout was valid JSON.
	KindParsed OutcomeKind = iota + 1
	// KindRaw means the process exited zero but stdout was not JSON.
	KindRaw
	// KindFailed means the process exited non-zero, timed out, or never
	// launched.
	KindFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case KindParsed:
		return "parsed"
	case KindRaw:
		return "raw"
	case KindFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the normalized result of one tool call. Exactly one variant is
// populated, selected by Kind: Payload for KindParsed, Text for KindRaw,
// Failure for KindFailed. Construct outcomes with ParsedOutcome, RawOutcome
// and FailedOutcome; the zero value is not a valid outcome.
type Outcome struct {
	Kind OutcomeKind

	// Payload holds the JSON bytes when Kind is KindParsed.
	Payload json.RawMessage
	// Text holds stdout verbatim when Kind is KindRaw.
	Text string
	// Failure describes what went wrong when Kind is KindFailed.
	Failure *Failure
}

// ParsedOutcome returns an Outcome carrying a valid JSON payload.
func ParsedOutcome(payload json.RawMessage) Outcome {
	return Outcome{Kind: KindParsed, Payload: payload}
}

// RawOutcome returns an Outcome carrying non-JSON stdout, unmodified.
func RawOutcome(text string) Outcome {
	return Outcome{Kind: KindRaw, Text: text}
}

// FailedOutcome returns an Outcome carrying a failure. exitCode is nil when
// the process never reached an exit status (timeout kill, launch failure).
func FailedOutcome(message string, exitCode *int) Outcome {
	return Outcome{Kind: KindFailed, Failure: &Failure{Message: message, ExitCode: exitCode}}
}

// Err returns the Failure as an error, or nil for parsed and raw outcomes.
func (o Outcome) Err() error {
	if o.Kind == KindFailed && o.Failure != nil {
		return o.Failure
	}
	return nil
}

// Decode unmarshals a parsed payload into v. Raw and failed outcomes carry
// no JSON; decoding them is an error.
func (o Outcome) Decode(v any) error {
	switch o.Kind {
	case KindParsed:
		if err := json.Unmarshal(o.Payload, v); err != nil {
			return fmt.Errorf("decoding tool payload: %w", err)
		}
		return nil
	case KindRaw:
		return fmt.Errorf("tool returned unstructured text, not JSON")
	case KindFailed:
		return o.Failure
	default:
		return fmt.Errorf("invalid outcome")
	}
}

// Failure describes a tool call that produced no usable output: a non-zero
// exit, a timeout kill, or a process that never launched. Message preserves
// the bridge's stderr (or the local failure reason) verbatim; ExitCode is
// nil when the process did not run to an exit status.
type Failure struct {
	Message  string
	ExitCode *int
}

func (f *Failure) Error() string {
	msg := strings.TrimSpace(f.Message)
	if msg == "" {
		msg = "no error output"
	}
	if f.ExitCode != nil {
		return fmt.Sprintf("tool call failed (exit %d): %s", *f.ExitCode, msg)
	}
	return fmt.Sprintf("tool call failed: %s", msg)
}
