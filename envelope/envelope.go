// Package envelope defines the uniform result shapes returned by every tool.
//
// Each tool's failure representation is structurally the same as its success
// representation: a status-returning tool reports errors as a status record,
// and a row-returning tool reports errors as a one-element list containing an
// [ErrorRow]. Callers therefore need exactly one parse path per tool,
// regardless of outcome, and an empty row list is always distinguishable
// from a failed call.
package envelope

import "fmt"

// Status values carried in [Status] and [Value] records.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Status is the outcome record for mutating operations (delete, add/update).
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OK returns a success Status with a formatted message.
func OK(format string, args ...any) Status {
	return Status{Status: StatusSuccess, Message: fmt.Sprintf(format, args...)}
}

// Errf returns an error Status whose message is the failure's description
// prefixed with an operation-specific label.
func Errf(label string, err error) Status {
	return Status{Status: StatusError, Message: fmt.Sprintf("%s: %v", label, err)}
}

// Err returns an error Status with a formatted message, for failures
// detected by the adapter itself rather than reported by the provider.
func Err(format string, args ...any) Status {
	return Status{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// Value is the outcome record for scalar-returning operations. Exactly one
// of Value or Message is populated, selected by Status.
type Value struct {
	Status  string `json:"status"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

// ValueOK returns a success Value carrying the scalar result.
func ValueOK(v string) Value {
	return Value{Status: StatusSuccess, Value: v}
}

// ValueErr returns an error Value with a labeled failure message.
func ValueErr(label string, err error) Value {
	return Value{Status: StatusError, Message: fmt.Sprintf("%s: %v", label, err)}
}

// ErrorRow is the single row emitted when an entire row-returning operation
// fails up front. Row-returning operations never mix rows and errors: the
// call either yields its rows or this one-element list.
type ErrorRow struct {
	Error string `json:"error"`
}

// ErrorRows wraps a failure as the one-element error list for row-returning
// operations.
func ErrorRows(label string, err error) []ErrorRow {
	return []ErrorRow{{Error: fmt.Sprintf("%s: %v", label, err)}}
}
