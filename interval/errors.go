package interval

import "errors"

// ErrInvalidArgument reports a non-positive or non-finite base frequency.
var ErrInvalidArgument = errors.New("interval: invalid argument")
