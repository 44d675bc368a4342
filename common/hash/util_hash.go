package hash

import (
	ecrypto "github.com/ethereum/go-ethereum/crypto"
)

// Hash returns the keccak-256 Hash256 value of the data
func Hash(data []byte) Hash256 {
	bs := ecrypto.Keccak256(data)
	var hash Hash256
	copy(hash[:], bs)
	return hash
}
