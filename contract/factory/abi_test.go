package factory

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ecommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/amount"
)

func TestWithdrawSelector(t *testing.T) {
	h := crypto.Keccak256([]byte(WithdrawSignature))
	if !bytes.Equal(h[:4], WithdrawSelector[:]) {
		t.Fatalf("selector mismatch: got %x want %x", WithdrawSelector, h[:4])
	}
}

func TestABIEncodeWithdraw(t *testing.T) {
	token := common.MustParseAddress("0x0102030405060708090a0b0c0d0e0f1011121314")
	receiver := common.MustParseAddress("0x2122232425262728292a2b2c2d2e2f3031323334")
	am := amount.MustParseAmount("1000000000000000042")

	got, err := ABIEncodeWithdraw(token, receiver, am)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 100 {
		t.Fatalf("payload length %v", len(got))
	}
	if !bytes.Equal(got[0:4], WithdrawSelector[:]) {
		t.Errorf("selector %x", got[0:4])
	}
	if !bytes.Equal(got[16:36], token[:]) {
		t.Errorf("token word %x", got[4:36])
	}
	if !bytes.Equal(got[48:68], receiver[:]) {
		t.Errorf("receiver word %x", got[36:68])
	}
	for _, i := range []int{4, 15, 36, 47, 68, 83} {
		if got[i] != 0 {
			t.Errorf("padding byte %v is %x", i, got[i])
		}
	}

	// cross-check the argument words against the reference abi encoder
	addressT, err := abi.NewType("address", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	uint256T, err := abi.NewType("uint256", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	args := abi.Arguments{{Type: addressT}, {Type: addressT}, {Type: uint256T}}
	packed, err := args.Pack(
		ecommon.BytesToAddress(token[:]),
		ecommon.BytesToAddress(receiver[:]),
		am.Int,
	)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got[4:], packed) {
		t.Errorf("argument words mismatch\n got %x\nwant %x", got[4:], packed)
	}
}

func TestABIEncodeWithdrawBounds(t *testing.T) {
	token := common.MustParseAddress("0x0102030405060708090a0b0c0d0e0f1011121314")
	receiver := common.MustParseAddress("0x2122232425262728292a2b2c2d2e2f3031323334")

	max := &amount.Amount{Int: new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))}
	got, err := ABIEncodeWithdraw(token, receiver, max)
	if err != nil {
		t.Fatal(err)
	}
	for i := 84; i < 100; i++ {
		if got[i] != 0xff {
			t.Fatalf("max amount byte %v is %x", i, got[i])
		}
	}

	over := &amount.Amount{Int: new(big.Int).Lsh(big.NewInt(1), 128)}
	if _, err := ABIEncodeWithdraw(token, receiver, over); errors.Cause(err) != ErrAmountOverflow {
		t.Fatal("expect amount overflow got", err)
	}
	if _, err := ABIEncodeWithdraw(token, receiver, nil); errors.Cause(err) != ErrAmountOverflow {
		t.Fatal("expect amount overflow got", err)
	}
}
