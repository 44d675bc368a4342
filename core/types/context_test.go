package types

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common/amount"
	"github.com/meverselabs/tokenfactory/common/bin"
)

var errBoom = errors.New("boom")

type counterContract struct {
	identity AccountID
}

func (cont *counterContract) Identity() AccountID {
	return cont.identity
}

func (cont *counterContract) Init(identity AccountID) {
	cont.identity = identity
}

func (cont *counterContract) OnCreate(cc *ContractContext, Args []byte) error {
	if len(Args) > 0 {
		return errBoom
	}
	return nil
}

func (cont *counterContract) Front() interface{} {
	return &counterFront{cont: cont}
}

type counterFront struct {
	cont *counterContract
}

func (f *counterFront) Add(cc *ContractContext, v uint64) error {
	cc.SetContractData([]byte{0x01}, bin.Uint64Bytes(f.Get(cc)+v))
	return nil
}

func (f *counterFront) Get(cc *ContractContext) uint64 {
	bs := cc.ContractData([]byte{0x01})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint64(bs)
}

func (f *counterFront) Fail(cc *ContractContext) error {
	return errBoom
}

func (f *counterFront) AddFail(cc *ContractContext, v uint64) error {
	if err := f.Add(cc, v); err != nil {
		return err
	}
	cc.Promise(f.cont.identity).FunctionCall("Add", bin.TypeWriteAll(v), amount.NewAmount(0), Gas(1))
	return errBoom
}

func (f *counterFront) Caller(cc *ContractContext) AccountID {
	return cc.From()
}

func deployCounter(t *testing.T, ctx *Context, id AccountID) uint64 {
	t.Helper()
	ClassID, err := RegisterContractType(&counterContract{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.DeployContract(id, ClassID, nil, id); err != nil {
		t.Fatal(err)
	}
	return ClassID
}

func TestDeployContractRevert(t *testing.T) {
	ctx := NewContext()
	ClassID := deployCounter(t, ctx, "counter")

	// OnCreate failure must leave neither the contract nor the account
	if _, err := ctx.DeployContract("broken", ClassID, []byte{0x01}, "broken"); errors.Cause(err) != errBoom {
		t.Fatal("expect boom got", err)
	}
	if ctx.IsExistAccount("broken") || ctx.IsContract("broken") {
		t.Error("failed deploy left state behind")
	}

	if _, err := ctx.DeployContract("counter", ClassID, nil, "counter"); errors.Cause(err) != ErrExistContractType {
		t.Fatal("expect exist contract got", err)
	}
}

func TestExecDispatch(t *testing.T) {
	ctx := NewContext()
	deployCounter(t, ctx, "counter")

	if _, err := ctx.Exec("alice", "counter", "Add", []interface{}{uint64(3)}); err != nil {
		t.Fatal(err)
	}
	// lower-case method names resolve to the exported method
	if _, err := ctx.Exec("alice", "counter", "add", []interface{}{uint64(4)}); err != nil {
		t.Fatal(err)
	}
	is, err := ctx.Exec("alice", "counter", "Get", nil)
	if err != nil {
		t.Fatal(err)
	}
	if is[0].(uint64) != 7 {
		t.Error("counter", is[0])
	}

	is, err = ctx.Exec("alice", "counter", "Caller", nil)
	if err != nil {
		t.Fatal(err)
	}
	if is[0].(AccountID) != "alice" {
		t.Error("caller", is[0])
	}

	if _, err := ctx.Exec("alice", "counter", "Nope", nil); errors.Cause(err) != ErrNotExistMethod {
		t.Fatal("expect not exist method got", err)
	}
	if _, err := ctx.Exec("alice", "counter", "Add", []interface{}{"many"}); errors.Cause(err) != ErrInvalidMethodInput {
		t.Fatal("expect invalid input got", err)
	}
}

func TestExecRevertsFailedInvocation(t *testing.T) {
	ctx := NewContext()
	deployCounter(t, ctx, "counter")

	// a failing invocation must leave neither its state changes nor the
	// batches it recorded
	if _, err := ctx.Exec("alice", "counter", "AddFail", []interface{}{uint64(9)}); errors.Cause(err) != errBoom {
		t.Fatal("expect boom got", err)
	}
	is, err := ctx.Exec("alice", "counter", "Get", nil)
	if err != nil {
		t.Fatal(err)
	}
	if is[0].(uint64) != 0 {
		t.Error("failed invocation left state behind", is[0])
	}
	if len(ctx.PendingPromises()) != 0 {
		t.Error("failed invocation left a batch behind")
	}

	if _, err := ctx.Exec("alice", "counter", "Add", []interface{}{uint64(3)}); err != nil {
		t.Fatal(err)
	}
	is, err = ctx.Exec("alice", "counter", "Get", nil)
	if err != nil {
		t.Fatal(err)
	}
	if is[0].(uint64) != 3 {
		t.Error("counter after revert", is[0])
	}
}

func TestProcessPromisesAtomicity(t *testing.T) {
	ctx := NewContext()
	ClassID := deployCounter(t, ctx, "counter")

	cont, err := ctx.Contract("counter")
	if err != nil {
		t.Fatal(err)
	}
	cc := ctx.ContractContext(cont, "counter")

	// a batch failing halfway must leave no trace of its earlier actions
	cc.Promise("counter").
		FunctionCall("Add", bin.TypeWriteAll(uint64(5)), amount.NewAmount(0), Gas(1)).
		FunctionCall("Fail", nil, amount.NewAmount(0), Gas(1))
	if err := ctx.ProcessPromises(); errors.Cause(err) != errBoom {
		t.Fatal("expect boom got", err)
	}
	is, err := ctx.Exec("alice", "counter", "Get", nil)
	if err != nil {
		t.Fatal(err)
	}
	if is[0].(uint64) != 0 {
		t.Error("rejected batch left state behind", is[0])
	}

	// a rejected batch must not block the ones after it
	cc.Promise("counter").FunctionCall("Fail", nil, amount.NewAmount(0), Gas(1))
	cc.Promise("counter").FunctionCall("Add", bin.TypeWriteAll(uint64(2)), amount.NewAmount(0), Gas(1))
	if err := ctx.ProcessPromises(); errors.Cause(err) != errBoom {
		t.Fatal("expect boom got", err)
	}
	is, err = ctx.Exec("alice", "counter", "Get", nil)
	if err != nil {
		t.Fatal(err)
	}
	if is[0].(uint64) != 2 {
		t.Error("batch after a rejected one skipped", is[0])
	}
	if len(ctx.PendingPromises()) != 0 {
		t.Error("pending batches remain")
	}
	if len(ctx.PromiseHistory()) != 3 {
		t.Error("history", len(ctx.PromiseHistory()))
	}

	// deploy through a batch
	sub := AccountID("sub.counter")
	cc.Promise(sub).
		CreateAccount().
		DeployContract(ClassBinary(ClassID)).
		FunctionCall(InitMethod, nil, amount.NewAmount(0), Gas(1))
	if err := ctx.ProcessPromises(); err != nil {
		t.Fatal(err)
	}
	if !ctx.IsContract(sub) {
		t.Error("batch deploy did not run")
	}
}
