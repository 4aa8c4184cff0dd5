package errs

import (
	"errors"
)

var (
	ErrNotReady           = errors.New("link not ready")
	ErrUnsupportedCommand = errors.New("unsupported command")
)

var (
	ErrOutputDrive = errors.New("output drive failed")
)

var (
	ErrAssociationFailed = errors.New("association failed")
	ErrLinkProbeFailed   = errors.New("link probe failed")
)

var (
	ErrScheduleNotSet = errors.New("schedule not set")
	ErrAPIError       = errors.New("api error")
)
