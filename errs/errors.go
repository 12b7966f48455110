// Package errs defines the sentinel errors returned by tsrec.
//
// All errors are wrapped with additional context at the call site using
// fmt.Errorf("%w: ...") so callers can classify failures with errors.Is
// while still receiving a descriptive message.
package errs

import "errors"

var (
	// ErrTypeMismatch is returned when a resource path is written with a value
	// type different from the type it was first created with, or when a
	// type-specific operation targets a column of another type. The record is
	// left unchanged.
	ErrTypeMismatch = errors.New("resource type mismatch")

	// ErrRecordFull is returned when adding a sample would grow the encoded
	// container beyond the record's buffer bound. The offending sample is
	// rolled back and the record remains fully encodable.
	ErrRecordFull = errors.New("record buffer full")

	// ErrEncodingFault is returned when the container encoder fails for a
	// reason other than capacity. The record state is not mutated by encoding,
	// so it remains intact.
	ErrEncodingFault = errors.New("container encoding fault")

	// ErrTransportFailure is returned by Push when the transport send step
	// fails. The record is preserved untouched so an identical retry is
	// possible.
	ErrTransportFailure = errors.New("transport send failed")

	// ErrColumnNotFound is returned when an operation references a resource
	// path that does not exist in the record.
	ErrColumnNotFound = errors.New("resource column not found")

	// ErrPathTooLong is returned when a resource path exceeds MaxPathLen.
	ErrPathTooLong = errors.New("resource path too long")

	// ErrValueTooLong is returned when a string sample exceeds MaxStringLen.
	ErrValueTooLong = errors.New("string value too long")

	// ErrInvalidPath is returned when a resource path is empty.
	ErrInvalidPath = errors.New("invalid resource path")

	// ErrInvalidFactor is returned when a scaling factor is zero, NaN or
	// infinite, or when a factor is set on a non-numeric column.
	ErrInvalidFactor = errors.New("invalid scaling factor")

	// ErrNilSender is returned by NewPusher when no transport sender is given.
	ErrNilSender = errors.New("nil transport sender")
)
