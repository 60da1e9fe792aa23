package mediainfo

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors. Every error returned by this package matches one of these
// with errors.Is.
var (
	// ErrStringEncode is returned when a Go string cannot be represented in
	// the engine's string format (embedded NUL or invalid UTF-8).
	ErrStringEncode = errors.New("mediainfo: string cannot be encoded")

	// ErrStringDecode is returned when an engine string cannot be converted
	// back to a Go string.
	ErrStringDecode = errors.New("mediainfo: string cannot be decoded")

	// ErrNullPointer is returned when the engine hands back a NULL string.
	// It also matches ErrStringDecode.
	ErrNullPointer error = &nullPointerError{}

	// ErrZeroLengthResult is the engine's "field not present" signal: the
	// query succeeded but produced an empty string.
	ErrZeroLengthResult = errors.New("mediainfo: zero length result")

	// ErrNonNumericResult is returned by typed accessors when a present value
	// does not parse as the requested type.
	ErrNonNumericResult = errors.New("mediainfo: non-numeric result")

	// ErrNoSessionOpen is returned by streams that are not attached to a File.
	ErrNoSessionOpen = errors.New("mediainfo: no session open")

	// ErrLibraryNotAvailable is returned by New when the backend cannot be loaded.
	ErrLibraryNotAvailable = errors.New("mediainfo: library not available")

	// ErrSessionDeleted is returned by calls made after Delete.
	ErrSessionDeleted = errors.New("mediainfo: session deleted")

	// ErrOpenFailed is returned by OpenFile and OpenReader when the engine
	// did not recognize the input.
	ErrOpenFailed = errors.New("mediainfo: engine could not open input")
)

type nullPointerError struct{}

func (*nullPointerError) Error() string { return "mediainfo: null string pointer" }

func (*nullPointerError) Is(target error) bool { return target == ErrStringDecode }

// ErrorKind identifies the category of an Error.
type ErrorKind string

const (
	KindEncode       ErrorKind = "encode"
	KindDecode       ErrorKind = "decode"
	KindEmptyResult  ErrorKind = "empty_result"
	KindNonNumeric   ErrorKind = "non_numeric"
	KindNoSession    ErrorKind = "no_session"
	KindNotAvailable ErrorKind = "not_available"
	KindDeleted      ErrorKind = "deleted"
	KindOpenFailed   ErrorKind = "open_failed"
	KindUnknown      ErrorKind = "unknown"
)

// Error carries the failing operation and the parameter it was called with.
type Error struct {
	Op    string // Get, Option, Inform, Open, ...
	Param string // field or option name, if any
	Err   error  // one of the sentinel errors, possibly wrapped
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	b.WriteString(" (")
	b.WriteString(e.Op)
	if e.Param != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(e.Param))
	}
	b.WriteString(")")
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Kind classifies the underlying sentinel.
func (e *Error) Kind() ErrorKind { return KindOf(e.Err) }

// KindOf classifies any error returned by this package.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrStringEncode):
		return KindEncode
	case errors.Is(err, ErrStringDecode):
		return KindDecode
	case errors.Is(err, ErrZeroLengthResult):
		return KindEmptyResult
	case errors.Is(err, ErrNonNumericResult):
		return KindNonNumeric
	case errors.Is(err, ErrNoSessionOpen):
		return KindNoSession
	case errors.Is(err, ErrLibraryNotAvailable):
		return KindNotAvailable
	case errors.Is(err, ErrSessionDeleted):
		return KindDeleted
	case errors.Is(err, ErrOpenFailed):
		return KindOpenFailed
	default:
		return KindUnknown
	}
}

// IsAbsent reports whether err means the engine had no value for a field.
func IsAbsent(err error) bool {
	return errors.Is(err, ErrZeroLengthResult)
}

func opError(op, param string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Param: param, Err: err}
}
