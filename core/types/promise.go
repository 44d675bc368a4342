package types

import (
	"github.com/meverselabs/tokenfactory/common/amount"
)

// Gas is the compute resource attached to a promise action
type Gas uint64

// promise action kinds
const (
	ActionCreateAccount  = PromiseActionKind(0x01)
	ActionDeployContract = PromiseActionKind(0x02)
	ActionFunctionCall   = PromiseActionKind(0x03)
)

type PromiseActionKind uint8

// PromiseAction is a single step of a batch
type PromiseAction struct {
	Kind    PromiseActionKind
	Binary  []byte
	Method  string
	Args    []byte
	Deposit *amount.Amount
	Gas     Gas
}

// Promise is a batch of actions against one target account. Execution is
// fire-and-continue: the creating invocation never observes the outcome,
// and the ledger rejects the whole batch when any action fails.
type Promise struct {
	creator AccountID
	target  AccountID
	actions []*PromiseAction
}

// Creator returns the account that recorded the batch
func (p *Promise) Creator() AccountID {
	return p.creator
}

// Target returns the account the batch acts on
func (p *Promise) Target() AccountID {
	return p.target
}

// Actions returns the recorded actions of the batch
func (p *Promise) Actions() []*PromiseAction {
	return p.actions
}

// CreateAccount appends a create-account action
func (p *Promise) CreateAccount() *Promise {
	p.actions = append(p.actions, &PromiseAction{
		Kind: ActionCreateAccount,
	})
	return p
}

// DeployContract appends a code deployment action
func (p *Promise) DeployContract(binary []byte) *Promise {
	p.actions = append(p.actions, &PromiseAction{
		Kind:   ActionDeployContract,
		Binary: binary,
	})
	return p
}

// FunctionCall appends a method call action. Args is a bin.TypeWriteAll
// encoded argument vector.
func (p *Promise) FunctionCall(method string, Args []byte, deposit *amount.Amount, gas Gas) *Promise {
	p.actions = append(p.actions, &PromiseAction{
		Kind:    ActionFunctionCall,
		Method:  method,
		Args:    Args,
		Deposit: deposit,
		Gas:     gas,
	})
	return p
}

// HasAction returns the batch contains an action of the kind or not
func (p *Promise) HasAction(kind PromiseActionKind) bool {
	for _, act := range p.actions {
		if act.Kind == kind {
			return true
		}
	}
	return false
}
