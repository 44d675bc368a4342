package hash

import (
	"encoding/hex"
)

// Hash256Size is 32 bytes
const Hash256Size = 32

// Hash256 is the [Hash256Size]byte with methods
type Hash256 [Hash256Size]byte

// String returns the hex string of the hash
func (hash Hash256) String() string {
	return hex.EncodeToString(hash[:])
}

// Bytes returns the byte slice of the hash
func (hash Hash256) Bytes() []byte {
	return hash[:]
}

// Clone returns the clonend value of it
func (hash Hash256) Clone() Hash256 {
	var cp Hash256
	copy(cp[:], hash[:])
	return cp
}
