package util

import (
	"github.com/meverselabs/tokenfactory/core/types"
)

type TestContext struct {
	Ctx *types.Context
}

// NewTestContext builds a ledger with the engine bridge deployed, the
// locker representative account created and the factory deployed under
// FactoryID with the token binary already set.
func NewTestContext() *TestContext {
	tc := &TestContext{
		Ctx: types.NewContext(),
	}

	tc.DeployContract(EngineID, "Engine", nil)

	if err := tc.Ctx.CreateAccount(LockerID); err != nil {
		panic(err)
	}
	for _, id := range Users {
		if err := tc.Ctx.CreateAccount(id); err != nil {
			panic(err)
		}
	}

	tc.DeployContract(FactoryID, "Factory", factoryConstructionArgs())
	tc.MustSendTx(FactoryID, FactoryID, "SetTokenBinary", types.ClassBinary(ClassMap["Token"]))
	return tc
}

/////////// context ///////////
func GetCC(ctx *types.Context, target types.AccountID, user types.AccountID) (*types.ContractContext, error) {
	cont, err := ctx.Contract(target)
	if err != nil {
		return nil, err
	}
	cc := ctx.ContractContext(cont, user)
	return cc, nil
}

func Exec(ctx *types.Context, user types.AccountID, target types.AccountID, methodName string, args []interface{}) ([]interface{}, error) {
	return ctx.Exec(user, target, methodName, args)
}

// SendTx runs the method as the user without dispatching the recorded
// batches, so tests can inspect them through Ctx.PendingPromises first
func (tc *TestContext) SendTx(user types.AccountID, target types.AccountID, methodName string, args ...interface{}) ([]interface{}, error) {
	return Exec(tc.Ctx, user, target, methodName, args)
}

// MustSendTx runs the method as the user and dispatches every recorded
// batch, panicking on any failure along the way
func (tc *TestContext) MustSendTx(user types.AccountID, target types.AccountID, methodName string, args ...interface{}) []interface{} {
	is, err := Exec(tc.Ctx, user, target, methodName, args)
	if err != nil {
		panic(err)
	}
	if err := tc.Ctx.ProcessPromises(); err != nil {
		panic(err)
	}
	return is
}

// Flush dispatches the pending batches recorded by earlier SendTx calls
func (tc *TestContext) Flush() error {
	return tc.Ctx.ProcessPromises()
}
