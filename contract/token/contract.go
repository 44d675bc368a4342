package token

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/amount"
	"github.com/meverselabs/tokenfactory/core/types"
)

// TokenContract is the representative of one host-ledger token. Balances
// only come into existence through factory deposits and leave through
// Withdraw, which burns first and then asks the factory to unlock on the
// host ledger.
type TokenContract struct {
	identity types.AccountID
}

func (cont *TokenContract) Identity() types.AccountID {
	return cont.identity
}

func (cont *TokenContract) Init(identity types.AccountID) {
	cont.identity = identity
}

func (cont *TokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	if len(Args) == 0 {
		return nil
	}
	data := &TokenContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(data.Name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(data.Symbol))
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

// factory returns the account the token was deployed under. Only that
// account may mint.
func (cont *TokenContract) factory() types.AccountID {
	return cont.identity.Parent()
}

func (cont *TokenContract) addBalance(cc *types.ContractContext, id types.AccountID, am *amount.Amount) {
	sum := cont.BalanceOf(cc, id).Add(am)
	cc.SetContractData(makeBalanceKey(id), sum.Bytes())
}

func (cont *TokenContract) subBalance(cc *types.ContractContext, id types.AccountID, am *amount.Amount) error {
	balance := cont.BalanceOf(cc, id)
	if balance.Less(am) {
		return errors.Wrap(ErrInsufficientBalance, string(id))
	}
	rem := balance.Sub(am)
	if rem.IsZero() {
		cc.SetContractData(makeBalanceKey(id), nil)
	} else {
		cc.SetContractData(makeBalanceKey(id), rem.Bytes())
	}
	return nil
}

func (cont *TokenContract) setTotalSupply(cc *types.ContractContext, am *amount.Amount) {
	if am.IsZero() {
		cc.SetContractData([]byte{tagTotalSupply}, nil)
	} else {
		cc.SetContractData([]byte{tagTotalSupply}, am.Bytes())
	}
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Deposit mints the locked amount to the receiver. Only the factory the
// token was deployed under may call it. Every balance and the total supply
// must stay encodable in the 16 byte amount slot of the host unlock
// payload, so a credit that would push either past 128 bits is rejected.
func (cont *TokenContract) Deposit(cc *types.ContractContext, receiver types.AccountID, Amount *amount.Amount) error {
	if cc.From() != cont.factory() {
		return errors.Wrap(ErrOnlyFactory, string(cc.From()))
	}
	if Amount == nil || !Amount.IsPlus() {
		return errors.WithStack(ErrInvalidAmount)
	}
	sum := cont.BalanceOf(cc, receiver).Add(Amount)
	supply := cont.TotalSupply(cc).Add(Amount)
	if !sum.FitsMaxBits() || !supply.FitsMaxBits() {
		return errors.WithStack(ErrAmountOverflow)
	}
	cc.SetContractData(makeBalanceKey(receiver), sum.Bytes())
	cont.setTotalSupply(cc, supply)
	return nil
}

// Withdraw burns the caller's tokens and asks the factory to unlock the
// same amount for the receiver on the host ledger. A relay failure fails
// the whole invocation, reverting the burn with it; once Withdraw returns
// without error the unlock is in flight.
func (cont *TokenContract) Withdraw(cc *types.ContractContext, receiver common.Address, Amount *amount.Amount) (*types.Promise, error) {
	if Amount == nil || !Amount.IsPlus() {
		return nil, errors.WithStack(ErrInvalidAmount)
	}
	if err := cont.subBalance(cc, cc.From(), Amount); err != nil {
		return nil, err
	}
	cont.setTotalSupply(cc, cont.TotalSupply(cc).Sub(Amount))
	is, err := cc.Exec(cc, cont.factory(), "OnWithdraw", []interface{}{receiver, Amount})
	if err != nil {
		return nil, err
	}
	if len(is) == 0 {
		return nil, nil
	}
	p, _ := is[0].(*types.Promise)
	return p, nil
}

// Transfer moves tokens between accounts of this ledger without touching
// the host ledger
func (cont *TokenContract) Transfer(cc *types.ContractContext, To types.AccountID, Amount *amount.Amount) error {
	if Amount == nil || !Amount.IsPlus() {
		return errors.WithStack(ErrInvalidAmount)
	}
	if !To.IsValid() {
		return errors.WithStack(types.ErrInvalidAccountID)
	}
	if err := cont.subBalance(cc, cc.From(), Amount); err != nil {
		return err
	}
	cont.addBalance(cc, To, Amount)
	return nil
}

// SetMetadata fills the display name and symbol in. Only the factory may
// call it, deployments through deposits start without metadata.
func (cont *TokenContract) SetMetadata(cc *types.ContractContext, name string, symbol string) error {
	if cc.From() != cont.factory() {
		return errors.Wrap(ErrOnlyFactory, string(cc.From()))
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(symbol))
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Name(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}

func (cont *TokenContract) Symbol(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}

func (cont *TokenContract) TotalSupply(cc *types.ContractContext) *amount.Amount {
	bs := cc.ContractData([]byte{tagTotalSupply})
	if len(bs) == 0 {
		return amount.NewAmount(0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) BalanceOf(cc *types.ContractContext, id types.AccountID) *amount.Amount {
	bs := cc.ContractData(makeBalanceKey(id))
	if len(bs) == 0 {
		return amount.NewAmount(0)
	}
	return amount.NewAmountFromBytes(bs)
}
