package factory

import (
	"errors"
)

// factory errors
var (
	ErrOnlyLocker              = errors.New("only the locker can call this method")
	ErrOnlySelf                = errors.New("only the factory itself can call this method")
	ErrBinaryNotAvailable      = errors.New("token binary is not set")
	ErrMalformedCallerIdentity = errors.New("caller identity is not a token sub-account")
	ErrIdentityTooLong         = errors.New("factory identity too long to create token sub-accounts")
	ErrAmountOverflow          = errors.New("amount does not fit in 128 bits")
	ErrExistToken              = errors.New("token is already deployed")
	ErrNotExistToken           = errors.New("token is not deployed")
)
