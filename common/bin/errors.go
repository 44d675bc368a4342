package bin

import (
	"errors"
)

// bin errors
var (
	ErrInvalidLength  = errors.New("invalid length")
	ErrUnknownTypeTag = errors.New("unknown type tag")
)
