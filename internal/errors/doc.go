// Package errors defines the typed errors returned by execstream.
//
// All error types implement the ExecError interface, which allows
// callers to distinguish library errors from other failures. Sentinel
// errors are provided for conditions commonly checked with errors.Is.
package errors
