package protocol

import (
	"errors"

	"gotodir/internal/model"
)

// Code is the error class of a failed invocation.
type Code string

const (
	CodeOK       Code = "ok"
	CodeUnknown  Code = "unknown_location"
	CodeNotFound Code = "not_found"
	CodeInvalid  Code = "invalid_argument"
	CodeIO       Code = "io"
	CodeOpener   Code = "opener"
	CodeInternal Code = "internal"
)

// Exit statuses. NotFound is a warning, not a failure.
const (
	ExitOK       = 0
	ExitUnknown  = 1
	ExitInvalid  = 2
	ExitIO       = 3
	ExitOpener   = 4
	ExitInternal = 5
)

// Classify maps err onto a Code using the model sentinels only.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, model.ErrIO):
		return CodeIO
	case errors.Is(err, model.ErrUnknownLocation):
		return CodeUnknown
	case errors.Is(err, model.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, model.ErrInvalidArgument), errors.Is(err, model.ErrMalformedRecord):
		return CodeInvalid
	case errors.Is(err, model.ErrOpener):
		return CodeOpener
	}
	return CodeInternal
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	switch Classify(err) {
	case CodeOK, CodeNotFound:
		return ExitOK
	case CodeUnknown:
		return ExitUnknown
	case CodeInvalid:
		return ExitInvalid
	case CodeIO:
		return ExitIO
	case CodeOpener:
		return ExitOpener
	}
	return ExitInternal
}

// FromError turns err into a printable result carrying its exit status.
func FromError(err error) Result {
	if err == nil {
		return Value("")
	}
	prefix := "error: "
	if Classify(err) == CodeNotFound {
		prefix = "warning: "
	}
	r := Value(prefix + err.Error())
	r.Status = ExitCode(err)
	return r
}
