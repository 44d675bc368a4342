package factory

import (
	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/amount"
	"github.com/meverselabs/tokenfactory/core/types"
)

func (cont *FactoryContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *FactoryContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) SetTokenBinary(cc *types.ContractContext, binary []byte) error {
	return f.cont.SetTokenBinary(cc, binary)
}

func (f *front) CreateToken(cc *types.ContractContext, token common.Address) (*types.Promise, error) {
	return f.cont.CreateToken(cc, token)
}

func (f *front) OnDeposit(cc *types.ContractContext, token common.Address, receiver types.AccountID, Amount *amount.Amount) (*types.Promise, error) {
	return f.cont.OnDeposit(cc, token, receiver, Amount)
}

func (f *front) OnWithdraw(cc *types.ContractContext, receiver common.Address, Amount *amount.Amount) (*types.Promise, error) {
	return f.cont.OnWithdraw(cc, receiver, Amount)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Engine(cc *types.ContractContext) types.AccountID {
	return f.cont.Engine(cc)
}

func (f *front) Locker(cc *types.ContractContext) common.Address {
	return f.cont.Locker(cc)
}

func (f *front) LockerAccountID(cc *types.ContractContext) types.AccountID {
	return f.cont.LockerAccountID(cc)
}

func (f *front) TokenBinaryVersion(cc *types.ContractContext) uint32 {
	return f.cont.TokenBinaryVersion(cc)
}

func (f *front) IsToken(cc *types.ContractContext, token common.Address) bool {
	return f.cont.IsToken(cc, token)
}

func (f *front) TokenVersion(cc *types.ContractContext, token common.Address) (uint32, error) {
	return f.cont.TokenVersion(cc, token)
}
