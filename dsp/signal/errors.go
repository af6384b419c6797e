package signal

import "errors"

// Errors returned by tone synthesis.
var (
	ErrInvalidArgument = errors.New("signal: invalid argument")
	ErrOverflow        = errors.New("signal: sample exceeds bit depth")
)
