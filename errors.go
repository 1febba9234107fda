package textkit

import "errors"

// ErrInvalidArgument is returned when a caller passes an argument outside
// its allowed set, such as an unknown trim side.
var ErrInvalidArgument = errors.New("invalid argument")
