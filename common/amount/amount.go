package amount

import (
	"math/big"
)

var zeroInt = big.NewInt(0)

// MaxBits is the widest value a bridged balance may take. Host-ledger
// unlock messages carry the amount in a 16 byte slot.
const MaxBits = 128

// Amount is a raw integer token value based on the big.Int. Bridged tokens
// keep the host ledger's unit semantics, so no decimal point is applied.
type Amount struct {
	*big.Int
}

func newAmount(value int64) *Amount {
	return &Amount{
		Int: big.NewInt(value),
	}
}

// NewAmount returns the amount of the value
func NewAmount(value uint64) *Amount {
	b := newAmount(0)
	b.Int.SetUint64(value)
	return b
}

// NewAmountFromBytes parse the amount from the big-endian byte array
func NewAmountFromBytes(bs []byte) *Amount {
	b := newAmount(0)
	b.Int.SetBytes(bs)
	return b
}

// MarshalJSON is a marshaler function
func (am *Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + am.String() + `"`), nil
}

// UnmarshalJSON is a unmarshaler function
func (am *Amount) UnmarshalJSON(bs []byte) error {
	if len(bs) < 3 {
		return ErrInvalidAmountFormat
	}
	if bs[0] != '"' || bs[len(bs)-1] != '"' {
		return ErrInvalidAmountFormat
	}
	v, err := ParseAmount(string(bs[1 : len(bs)-1]))
	if err != nil {
		return err
	}
	am.Int = v.Int
	return nil
}

// Clone returns the clonend value of it
func (am *Amount) Clone() *Amount {
	c := newAmount(0)
	c.Int.Add(am.Int, zeroInt)
	return c
}

// Add returns a + b (*immutable)
func (am *Amount) Add(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Add(am.Int, b.Int)
	return c
}

// Sub returns a - b (*immutable)
func (am *Amount) Sub(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Sub(am.Int, b.Int)
	return c
}

// IsZero returns a == 0
func (am *Amount) IsZero() bool {
	return am.Int.Cmp(zeroInt) == 0
}

// IsPlus returns a > 0
func (am *Amount) IsPlus() bool {
	return am.Int.Cmp(zeroInt) > 0
}

// IsMinus returns a < 0
func (am *Amount) IsMinus() bool {
	return am.Int.Cmp(zeroInt) < 0
}

// Less returns a < b
func (am *Amount) Less(b *Amount) bool {
	return am.Int.Cmp(b.Int) < 0
}

// Equal checks that two values is same or not
func (am *Amount) Equal(b *Amount) bool {
	return am.Int.Cmp(b.Int) == 0
}

// FitsMaxBits returns the amount is representable in MaxBits bits or not
func (am *Amount) FitsMaxBits() bool {
	return !am.IsMinus() && am.Int.BitLen() <= MaxBits
}

// String returns the integer string of the amount
func (am *Amount) String() string {
	return am.Int.String()
}

// ParseAmount parse the amount from the integer string
func ParseAmount(str string) (*Amount, error) {
	bi, ok := big.NewInt(0).SetString(str, 10)
	if !ok || bi.Sign() < 0 {
		return nil, ErrInvalidAmountFormat
	}
	return &Amount{Int: bi}, nil
}

// MustParseAmount parse the amount from the integer string
func MustParseAmount(str string) *Amount {
	am, err := ParseAmount(str)
	if err != nil {
		panic(err)
	}
	return am
}
