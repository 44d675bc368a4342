package types

import (
	"errors"
)

// core/types errors
var (
	ErrExistContractType  = errors.New("exist contract type")
	ErrInvalidClassID     = errors.New("invalid class id")
	ErrInvalidBinary      = errors.New("invalid contract binary")
	ErrExistAccount       = errors.New("exist account")
	ErrNotExistAccount    = errors.New("not exist account")
	ErrNotExistContract   = errors.New("not exist contract")
	ErrInvalidAccountID   = errors.New("invalid account id")
	ErrNotExistMethod     = errors.New("not exist method")
	ErrInvalidMethodInput = errors.New("invalid method input")
)
