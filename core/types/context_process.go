package types

import (
	"log"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common/bin"
)

// initializer method every deployed contract exposes through OnCreate
const InitMethod = "New"

// ProcessPromises executes every pending batch in dispatch order. A batch
// is all-or-nothing: when any action fails the batch's state changes are
// reverted and the failure is logged before moving on to the next batch.
// The first failure is also returned so callers can assert on it. The
// creating invocations never observe these outcomes.
func (ctx *Context) ProcessPromises() error {
	var firstErr error
	for len(ctx.pending) > 0 {
		p := ctx.pending[0]
		ctx.pending = ctx.pending[1:]
		sn := ctx.Snapshot()
		if err := ctx.processPromise(p); err != nil {
			ctx.Revert(sn)
			log.Printf("promise batch from %v to %v rejected: %+v", p.creator, p.target, err)
			if firstErr == nil {
				firstErr = err
			}
		} else {
			ctx.Commit(sn)
		}
	}
	return firstErr
}

func (ctx *Context) processPromise(p *Promise) error {
	for _, act := range p.actions {
		switch act.Kind {
		case ActionCreateAccount:
			if err := ctx.CreateAccount(p.target); err != nil {
				return err
			}
		case ActionDeployContract:
			if !ctx.IsExistAccount(p.target) {
				return errors.WithStack(ErrNotExistAccount)
			}
			if ctx.IsContract(p.target) {
				return errors.WithStack(ErrExistContractType)
			}
			ClassID, err := ClassIDOfBinary(act.Binary)
			if err != nil {
				return err
			}
			cont, err := CreateContract(ClassID, p.target)
			if err != nil {
				return err
			}
			ctx.contracts[p.target] = cont
		case ActionFunctionCall:
			if act.Method == InitMethod {
				cont, err := ctx.Contract(p.target)
				if err != nil {
					return err
				}
				cc := ctx.ContractContext(cont, p.creator)
				if err := cont.OnCreate(cc, act.Args); err != nil {
					return err
				}
				continue
			}
			args, err := bin.TypeReadAll(act.Args, -1)
			if err != nil {
				return err
			}
			if _, err := ctx.Exec(p.creator, p.target, act.Method, args); err != nil {
				return err
			}
		default:
			return errors.Errorf("unknown promise action %v", act.Kind)
		}
	}
	return nil
}
