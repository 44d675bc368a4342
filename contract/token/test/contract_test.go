package test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/amount"
	"github.com/meverselabs/tokenfactory/contract/factory"
	"github.com/meverselabs/tokenfactory/contract/token"
	"github.com/meverselabs/tokenfactory/core/types"
	"github.com/meverselabs/tokenfactory/extern/test/util"
)

var testToken = common.MustParseAddress("0x0102030405060708090a0b0c0d0e0f1011121314")

func deployedToken(t *testing.T, tc *util.TestContext) types.AccountID {
	t.Helper()
	tc.MustSendTx(util.LockerID, util.FactoryID, "OnDeposit", testToken, util.Users[0], amount.MustParseAmount("100"))
	return factory.TokenAccountID(testToken, util.FactoryID)
}

func TestDepositOnlyFactory(t *testing.T) {
	TAG := "MINTAUTH"
	tc := util.NewTestContext()
	alice := util.Users[0]
	tokenID := deployedToken(t, tc)

	_, err := tc.SendTx(alice, tokenID, "Deposit", alice, amount.MustParseAmount("1000"))
	if errors.Cause(err) != token.ErrOnlyFactory {
		t.Fatal(TAG, "expect only factory got", err)
	}
	is := tc.MustSendTx(alice, tokenID, "BalanceOf", alice)
	if !is[0].(*amount.Amount).Equal(amount.MustParseAmount("100")) {
		t.Error(TAG, "balance changed", is[0])
	}
}

func TestTransfer(t *testing.T) {
	TAG := "TRANSFER"
	tc := util.NewTestContext()
	alice, bob := util.Users[0], util.Users[1]
	tokenID := deployedToken(t, tc)

	tc.MustSendTx(alice, tokenID, "Transfer", bob, amount.MustParseAmount("30"))
	is := tc.MustSendTx(alice, tokenID, "BalanceOf", alice)
	if !is[0].(*amount.Amount).Equal(amount.MustParseAmount("70")) {
		t.Error(TAG, "sender balance", is[0])
	}
	is = tc.MustSendTx(alice, tokenID, "BalanceOf", bob)
	if !is[0].(*amount.Amount).Equal(amount.MustParseAmount("30")) {
		t.Error(TAG, "receiver balance", is[0])
	}
	is = tc.MustSendTx(alice, tokenID, "TotalSupply")
	if !is[0].(*amount.Amount).Equal(amount.MustParseAmount("100")) {
		t.Error(TAG, "transfer changed the supply", is[0])
	}

	_, err := tc.SendTx(bob, tokenID, "Transfer", alice, amount.MustParseAmount("31"))
	if errors.Cause(err) != token.ErrInsufficientBalance {
		t.Fatal(TAG, "expect insufficient balance got", err)
	}
	_, err = tc.SendTx(alice, tokenID, "Transfer", bob, amount.NewAmount(0))
	if errors.Cause(err) != token.ErrInvalidAmount {
		t.Fatal(TAG, "expect invalid amount got", err)
	}
}

func TestMetadata(t *testing.T) {
	TAG := "METADATA"
	tc := util.NewTestContext()
	alice := util.Users[0]
	tokenID := deployedToken(t, tc)

	is := tc.MustSendTx(alice, tokenID, "Name")
	if is[0].(string) != "" {
		t.Error(TAG, "factory deployments start without a name")
	}

	_, err := tc.SendTx(alice, tokenID, "SetMetadata", "Wrapped Test", "WTST")
	if errors.Cause(err) != token.ErrOnlyFactory {
		t.Fatal(TAG, "expect only factory got", err)
	}

	tc.MustSendTx(util.FactoryID, tokenID, "SetMetadata", "Wrapped Test", "WTST")
	is = tc.MustSendTx(alice, tokenID, "Name")
	if is[0].(string) != "Wrapped Test" {
		t.Error(TAG, "name", is[0])
	}
	is = tc.MustSendTx(alice, tokenID, "Symbol")
	if is[0].(string) != "WTST" {
		t.Error(TAG, "symbol", is[0])
	}
}
