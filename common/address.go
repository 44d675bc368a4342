package common

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// AddressSize is 20 bytes
const AddressSize = 20

// Address is the [AddressSize]byte with methods. It identifies a token or
// an account on the host ledger.
type Address [AddressSize]byte

// ZeroAddr is the zero value of the address
var ZeroAddr = Address{}

// BytesToAddress returns a Address of the byte array
func BytesToAddress(bs []byte) Address {
	var addr Address
	if len(bs) > AddressSize {
		bs = bs[len(bs)-AddressSize:]
	}
	copy(addr[AddressSize-len(bs):], bs)
	return addr
}

// MarshalJSON is a marshaler function
func (addr Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + addr.String() + `"`), nil
}

// UnmarshalJSON is a unmarshaler function
func (addr *Address) UnmarshalJSON(bs []byte) error {
	if len(bs) < 3 {
		return ErrInvalidAddressFormat
	}
	if bs[0] != '"' || bs[len(bs)-1] != '"' {
		return ErrInvalidAddressFormat
	}
	v, err := ParseAddress(string(bs[1 : len(bs)-1]))
	if err != nil {
		return err
	}
	copy(addr[:], v[:])
	return nil
}

// String returns the 0x-prefixed hex string of the address
func (addr Address) String() string {
	return "0x" + addr.Hex()
}

// Hex returns the bare lower-case hex string of the address. This is the
// form embedded in destination-ledger account identities.
func (addr Address) Hex() string {
	return hex.EncodeToString(addr[:])
}

// Bytes returns the byte slice of the address
func (addr Address) Bytes() []byte {
	return addr[:]
}

// Clone returns the clonend value of it
func (addr Address) Clone() Address {
	var cp Address
	copy(cp[:], addr[:])
	return cp
}

// IsZero returns the address equals the zero address or not
func (addr Address) IsZero() bool {
	return bytes.Equal(addr[:], ZeroAddr[:])
}

// ParseAddress parse the address from the hex string
func ParseAddress(str string) (Address, error) {
	str = strings.TrimPrefix(strings.ToLower(str), "0x")
	if len(str) != AddressSize*2 {
		return Address{}, ErrInvalidAddressFormat
	}
	bs, err := hex.DecodeString(str)
	if err != nil {
		return Address{}, ErrInvalidAddressFormat
	}
	var addr Address
	copy(addr[:], bs)
	return addr, nil
}

// MustParseAddress panic when error occurred
func MustParseAddress(str string) Address {
	addr, err := ParseAddress(str)
	if err != nil {
		panic(err)
	}
	return addr
}

// HexToAddress returns the address of the hex string and panics on a
// malformed input. Use ParseAddress for untrusted input.
func HexToAddress(str string) Address {
	return MustParseAddress(str)
}
