package types

import (
	"strings"
)

// MaxAccountIDLength is the longest identifier the ledger accepts
const MaxAccountIDLength = 64

// MinAccountIDLength is the shortest identifier the ledger accepts
const MinAccountIDLength = 2

// AccountID is the textual identity of an account on the destination
// ledger. Sub-accounts are named <child>.<parent>.
type AccountID string

// String returns the string of the account id
func (id AccountID) String() string {
	return string(id)
}

// Parent returns the namespace the account lives under, or an empty id
// for a top level account.
func (id AccountID) Parent() AccountID {
	if idx := strings.IndexByte(string(id), '.'); idx >= 0 {
		return id[idx+1:]
	}
	return ""
}

// IsValid checks the account id against the ledger naming rules: 2 to 64
// characters, dot separated parts of lower-case letters, digits, '-' and
// '_', where every part starts and ends with a letter or a digit.
func (id AccountID) IsValid() bool {
	if len(id) < MinAccountIDLength || len(id) > MaxAccountIDLength {
		return false
	}
	for _, part := range strings.Split(string(id), ".") {
		if len(part) == 0 {
			return false
		}
		for i := 0; i < len(part); i++ {
			c := part[i]
			switch {
			case c >= 'a' && c <= 'z':
			case c >= '0' && c <= '9':
			case c == '-' || c == '_':
				if i == 0 || i == len(part)-1 {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}

// SubAccountID returns the account id of the child under the parent
// namespace.
func SubAccountID(child string, parent AccountID) AccountID {
	return AccountID(child + "." + string(parent))
}
