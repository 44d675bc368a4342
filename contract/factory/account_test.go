package factory

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/core/types"
)

func TestTokenAccountID(t *testing.T) {
	token := common.MustParseAddress("0x0102030405060708090a0b0c0d0e0f1011121314")
	id := TokenAccountID(token, types.AccountID("factory"))
	if id != types.AccountID("0102030405060708090a0b0c0d0e0f1011121314.factory") {
		t.Fatal("unexpected id", id)
	}
	if !id.IsValid() {
		t.Fatal("derived id is not a valid account id")
	}
	if id.Parent() != types.AccountID("factory") {
		t.Fatal("derived id parent", id.Parent())
	}

	other := TokenAccountID(common.MustParseAddress("0x0102030405060708090a0b0c0d0e0f1011121315"), types.AccountID("factory"))
	if other == id {
		t.Fatal("distinct addresses share an id")
	}
}

func TestTokenAddressOfAccountID(t *testing.T) {
	token := common.MustParseAddress("0xDEADbeef05060708090a0b0c0d0e0f1011121314")
	id := TokenAccountID(token, types.AccountID("factory"))
	got, err := TokenAddressOfAccountID(id)
	if err != nil {
		t.Fatal(err)
	}
	if got != token {
		t.Fatalf("round trip: got %v want %v", got, token)
	}

	// the address alone is enough, nothing past it is inspected
	if _, err := TokenAddressOfAccountID(id[:40]); err != nil {
		t.Fatal(err)
	}

	for _, bad := range []types.AccountID{
		"",
		"alice",
		"0102030405060708090a0b0c0d0e0f10111213.factory",
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz.factory",
	} {
		if _, err := TokenAddressOfAccountID(bad); errors.Cause(err) != ErrMalformedCallerIdentity {
			t.Fatal("expect malformed caller for", bad, "got", err)
		}
	}
}
