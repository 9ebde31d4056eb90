package resume

import "errors"

var (
	// ErrInvalidResume wraps every validation problem.
	ErrInvalidResume = errors.New("invalid resume")

	// ErrUnsupportedFormat is returned by [LoadFile] for unknown extensions.
	ErrUnsupportedFormat = errors.New("unsupported resume format")
)
