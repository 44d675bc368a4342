package types

import (
	"github.com/pkg/errors"
)

// Context is the state of a single destination ledger instance. The ledger
// runs one entry-point invocation to completion before the next, so the
// context is used from a single goroutine and needs no locking.
type Context struct {
	accounts  map[AccountID]bool
	contracts map[AccountID]Contract
	data      map[string][]byte
	pending   []*Promise
	history   []*Promise
	stack     []*contextSnapshot
}

type contextSnapshot struct {
	accounts   map[AccountID]bool
	contracts  map[AccountID]Contract
	data       map[string][]byte
	pendingLen int
	historyLen int
}

// NewContext returns a Context
func NewContext() *Context {
	return &Context{
		accounts:  map[AccountID]bool{},
		contracts: map[AccountID]Contract{},
		data:      map[string][]byte{},
	}
}

// ContractContext returns the context of the contract with the signer
func (ctx *Context) ContractContext(cont Contract, from AccountID) *ContractContext {
	cc := &ContractContext{
		cont: cont.Identity(),
		from: from,
		ctx:  ctx,
	}
	cc.Exec = func(inner *ContractContext, target AccountID, method string, args []interface{}) ([]interface{}, error) {
		return ctx.Exec(inner.cont, target, method, args)
	}
	return cc
}

// CreateAccount registers the account on the ledger
func (ctx *Context) CreateAccount(id AccountID) error {
	if !id.IsValid() {
		return errors.WithStack(ErrInvalidAccountID)
	}
	if ctx.accounts[id] {
		return errors.WithStack(ErrExistAccount)
	}
	ctx.accounts[id] = true
	return nil
}

// IsExistAccount returns the account is created or not
func (ctx *Context) IsExistAccount(id AccountID) bool {
	return ctx.accounts[id]
}

// IsContract returns a contract is deployed at the account or not
func (ctx *Context) IsContract(id AccountID) bool {
	_, has := ctx.contracts[id]
	return has
}

// Contract returns the contract deployed at the account
func (ctx *Context) Contract(id AccountID) (Contract, error) {
	cont, has := ctx.contracts[id]
	if !has {
		return nil, errors.WithStack(ErrNotExistContract)
	}
	return cont, nil
}

// DeployContract instantiates the contract class at the account and runs
// its initializer. The account is created when it does not exist yet.
func (ctx *Context) DeployContract(id AccountID, ClassID uint64, Args []byte, from AccountID) (Contract, error) {
	sn := ctx.Snapshot()
	if !ctx.accounts[id] {
		if err := ctx.CreateAccount(id); err != nil {
			ctx.Revert(sn)
			return nil, err
		}
	}
	if ctx.IsContract(id) {
		ctx.Revert(sn)
		return nil, errors.WithStack(ErrExistContractType)
	}
	cont, err := CreateContract(ClassID, id)
	if err != nil {
		ctx.Revert(sn)
		return nil, err
	}
	ctx.contracts[id] = cont
	cc := ctx.ContractContext(cont, from)
	if err := cont.OnCreate(cc, Args); err != nil {
		ctx.Revert(sn)
		return nil, err
	}
	ctx.Commit(sn)
	return cont, nil
}

// Data returns the contract data of the name scoped by the owner contract
// and the subject account
func (ctx *Context) Data(cont AccountID, subject AccountID, name []byte) []byte {
	return ctx.data[dataKey(cont, subject, name)]
}

// SetData inserts the contract data of the name scoped by the owner
// contract and the subject account
func (ctx *Context) SetData(cont AccountID, subject AccountID, name []byte, value []byte) {
	key := dataKey(cont, subject, name)
	if len(value) == 0 {
		delete(ctx.data, key)
		return
	}
	ctx.data[key] = value
}

func dataKey(cont AccountID, subject AccountID, name []byte) string {
	return string(cont) + "\x00" + string(subject) + "\x00" + string(name)
}

// Snapshot pushes a copy of the state and returns the revision to revert
// or commit with
func (ctx *Context) Snapshot() int {
	sn := &contextSnapshot{
		accounts:   map[AccountID]bool{},
		contracts:  map[AccountID]Contract{},
		data:       map[string][]byte{},
		pendingLen: len(ctx.pending),
		historyLen: len(ctx.history),
	}
	for k, v := range ctx.accounts {
		sn.accounts[k] = v
	}
	for k, v := range ctx.contracts {
		sn.contracts[k] = v
	}
	for k, v := range ctx.data {
		sn.data[k] = v
	}
	ctx.stack = append(ctx.stack, sn)
	return len(ctx.stack)
}

// Revert restores the state of the revision
func (ctx *Context) Revert(revision int) {
	if revision <= 0 || revision > len(ctx.stack) {
		return
	}
	sn := ctx.stack[revision-1]
	ctx.accounts = sn.accounts
	ctx.contracts = sn.contracts
	ctx.data = sn.data
	ctx.pending = ctx.pending[:sn.pendingLen]
	ctx.history = ctx.history[:sn.historyLen]
	ctx.stack = ctx.stack[:revision-1]
}

// Commit drops the snapshot of the revision keeping the current state
func (ctx *Context) Commit(revision int) {
	if revision <= 0 || revision > len(ctx.stack) {
		return
	}
	ctx.stack = ctx.stack[:revision-1]
}

func (ctx *Context) recordPromise(p *Promise) {
	ctx.pending = append(ctx.pending, p)
	ctx.history = append(ctx.history, p)
}

// PendingPromises returns the recorded batches not executed yet
func (ctx *Context) PendingPromises() []*Promise {
	return ctx.pending
}

// PromiseHistory returns every batch recorded on this ledger in dispatch
// order, executed or not
func (ctx *Context) PromiseHistory() []*Promise {
	return ctx.history
}
