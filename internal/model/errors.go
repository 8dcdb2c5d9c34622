package model

import "errors"

// Error kinds shared by every component. Callers wrap them with
// fmt.Errorf("%w: ...") and test with errors.Is.
var (
	ErrUnknownLocation = errors.New("unknown location")
	ErrNotFound        = errors.New("not found")
	ErrMalformedRecord = errors.New("malformed record")
	ErrIO              = errors.New("i/o failure")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOpener          = errors.New("opener failed")
)
