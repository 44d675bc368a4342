package factory

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/core/types"
)

// hex characters of a host address inside an account identity
const tokenPrefixLength = common.AddressSize * 2

// TokenAccountID converts the host address of a token to its representative
// sub-account identity under the factory namespace. The conversion is
// injective: two distinct addresses never share an identity.
func TokenAccountID(token common.Address, factory types.AccountID) types.AccountID {
	return types.SubAccountID(token.Hex(), factory)
}

// TokenAddressOfAccountID recovers the host token address of a token
// sub-account identity. It must only be given the identity of the direct
// caller of the withdrawal entry point: whoever the identity maps to is
// implicitly authorized to request withdrawal for that token.
func TokenAddressOfAccountID(id types.AccountID) (common.Address, error) {
	if len(id) < tokenPrefixLength {
		return common.ZeroAddr, errors.Wrap(ErrMalformedCallerIdentity, string(id))
	}
	bs, err := hex.DecodeString(string(id[:tokenPrefixLength]))
	if err != nil {
		return common.ZeroAddr, errors.Wrap(ErrMalformedCallerIdentity, string(id))
	}
	var addr common.Address
	copy(addr[:], bs)
	return addr, nil
}
