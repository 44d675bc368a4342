package token

import (
	"github.com/meverselabs/tokenfactory/core/types"
)

var (
	tagTokenName   = byte(0x01)
	tagTokenSymbol = byte(0x02)
	tagTotalSupply = byte(0x03)
	tagBalance     = byte(0x04)
)

func makeBalanceKey(id types.AccountID) []byte {
	bs := make([]byte, 1+len(id))
	bs[0] = tagBalance
	copy(bs[1:], id)
	return bs
}
