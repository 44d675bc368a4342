package token

import (
	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/amount"
	"github.com/meverselabs/tokenfactory/core/types"
)

func (cont *TokenContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *TokenContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) Deposit(cc *types.ContractContext, receiver types.AccountID, Amount *amount.Amount) error {
	return f.cont.Deposit(cc, receiver, Amount)
}

func (f *front) Withdraw(cc *types.ContractContext, receiver common.Address, Amount *amount.Amount) (*types.Promise, error) {
	return f.cont.Withdraw(cc, receiver, Amount)
}

func (f *front) Transfer(cc *types.ContractContext, To types.AccountID, Amount *amount.Amount) error {
	return f.cont.Transfer(cc, To, Amount)
}

func (f *front) SetMetadata(cc *types.ContractContext, name string, symbol string) error {
	return f.cont.SetMetadata(cc, name, symbol)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Name(cc *types.ContractContext) string {
	return f.cont.Name(cc)
}

func (f *front) Symbol(cc *types.ContractContext) string {
	return f.cont.Symbol(cc)
}

func (f *front) TotalSupply(cc *types.ContractContext) *amount.Amount {
	return f.cont.TotalSupply(cc)
}

func (f *front) BalanceOf(cc *types.ContractContext, id types.AccountID) *amount.Amount {
	return f.cont.BalanceOf(cc, id)
}
