package factory

import (
	"github.com/meverselabs/tokenfactory/core/types"
)

var (
	tagEngineAccount      = byte(0x01)
	tagLockerAddress      = byte(0x02)
	tagTokenBinary        = byte(0x03)
	tagTokenBinaryVersion = byte(0x04)
	tagToken              = byte(0x05)
)

func makeTokenKey(id types.AccountID) []byte {
	bs := make([]byte, 1+len(id))
	bs[0] = tagToken
	copy(bs[1:], id)
	return bs
}
