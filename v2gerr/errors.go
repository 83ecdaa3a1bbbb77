// Package v2gerr defines the closed error taxonomy shared by the wire,
// grammar and v2g packages. Every codec failure is one of the Kinds below;
// there is no recovery inside the codec (see spec §7 — a non-success status
// is terminal for the call).
package v2gerr

import "fmt"

// Kind is the closed set of codec failure categories.
type Kind string

const (
	// EndOfStream: not enough bits remain to satisfy a read.
	EndOfStream Kind = "end_of_stream"
	// UnknownEventCode: decoded event code >= transition count in current state.
	UnknownEventCode Kind = "unknown_event_code"
	// UnknownGrammarID: interpreter reached a state id not present in the type table.
	UnknownGrammarID Kind = "unknown_grammar_id"
	// UnsupportedSubEvent: second-level EXI event (non-schema) encountered.
	UnsupportedSubEvent Kind = "unsupported_sub_event"
	// DeviantsNotSupported: terminal element-end slot carried a deviation flag.
	DeviantsNotSupported Kind = "deviants_not_supported"
	// StringValuesNotSupported: string length prefix indicated a string-table reference.
	StringValuesNotSupported Kind = "string_values_not_supported"
	// CapacityExceeded: string/binary/array length exceeds the per-field bound.
	CapacityExceeded Kind = "capacity_exceeded"
	// HeaderMismatch: EXI document header does not match the expected profile.
	HeaderMismatch Kind = "header_mismatch"
)

// Error is the structured error type returned by every codec operation.
type Error struct {
	Kind  Kind
	// Path names the field or type the error occurred in, outermost first
	// (e.g. "V2GMessage.Body.SessionSetupReq.EVCCID").
	Path  []string
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if len(e.Path) > 0 {
		msg += " at " + joinPath(e.Path)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (%s)", e.Cause.Error())
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on Kind only, so callers can do errors.Is(err, v2gerr.New(v2gerr.CapacityExceeded, nil, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func joinPath(path []string) string {
	out := path[0]
	for _, p := range path[1:] {
		out += "." + p
	}
	return out
}

// New constructs an Error of the given kind.
func New(kind Kind, path []string, detail string) *Error {
	return &Error{Kind: kind, Path: path, Detail: detail}
}

// Wrap constructs an Error of the given kind, chaining cause.
func Wrap(kind Kind, path []string, detail string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Detail: detail, Cause: cause}
}

// WithPath returns a copy of err with field prepended to the front of its path.
// Used as the interpreter unwinds recursion, so a deeply nested failure
// carries a fully-qualified path back to the caller.
func WithPath(err error, field string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		path := make([]string, 0, len(e.Path)+1)
		path = append(path, field)
		path = append(path, e.Path...)
		return &Error{Kind: e.Kind, Path: path, Detail: e.Detail, Cause: e.Cause}
	}
	return err
}
