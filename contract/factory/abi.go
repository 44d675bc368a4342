package factory

import (
	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/amount"
)

// WithdrawSignature is the canonical host-ledger signature of the unlock call
const WithdrawSignature = "withdraw(address,address,uint256)"

// WithdrawSelector is the first four bytes of the keccak-256 hash of
// WithdrawSignature
var WithdrawSelector = [4]byte{0xd9, 0xca, 0xed, 0x12}

// ABIEncodeWithdraw builds the host-ledger unlock payload by hand. The
// output is always 100 bytes: the selector followed by three 32 byte
// argument words with the value right-aligned in each word.
//
//	[0,4)    selector
//	[4,36)   token address, left-padded with zeros
//	[36,68)  receiver address, left-padded with zeros
//	[68,100) amount, big-endian in the low 16 bytes
func ABIEncodeWithdraw(token common.Address, receiver common.Address, Amount *amount.Amount) ([]byte, error) {
	if Amount == nil || !Amount.FitsMaxBits() {
		return nil, errors.WithStack(ErrAmountOverflow)
	}
	buffer := make([]byte, 4+32*3)
	copy(buffer[0:4], WithdrawSelector[:])
	copy(buffer[16:36], token[:])
	copy(buffer[48:68], receiver[:])
	Amount.Int.FillBytes(buffer[84:100])
	return buffer, nil
}
