package types

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Exec runs a method of the contract at the target account. The callee
// observes from as its direct caller. A failing invocation is discarded
// wholly: every state change and every batch it recorded is reverted
// before the error is returned.
func (ctx *Context) Exec(from AccountID, target AccountID, method string, args []interface{}) ([]interface{}, error) {
	if method == "" {
		return nil, errors.New("method not given")
	}
	cont, err := ctx.Contract(target)
	if err != nil {
		return nil, err
	}
	rMethod, err := methodByName(cont, method)
	if err != nil {
		return nil, err
	}
	sn := ctx.Snapshot()
	cc := ctx.ContractContext(cont, from)
	ins, err := contractInputsConv(cc, args, rMethod)
	if err != nil {
		ctx.Revert(sn)
		return nil, err
	}
	results, err := getResults(rMethod.Call(ins))
	if err != nil {
		ctx.Revert(sn)
		return nil, err
	}
	ctx.Commit(sn)
	return results, nil
}

func methodByName(cont Contract, method string) (reflect.Value, error) {
	front := reflect.ValueOf(cont.Front())
	name := strings.ToUpper(string(method[0])) + method[1:]
	rMethod := front.MethodByName(name)
	if !rMethod.IsValid() {
		return reflect.Value{}, errors.Wrap(ErrNotExistMethod, name)
	}
	return rMethod, nil
}

func contractInputsConv(cc *ContractContext, args []interface{}, rMethod reflect.Value) ([]reflect.Value, error) {
	mt := rMethod.Type()
	if mt.NumIn() != len(args)+1 {
		return nil, errors.Wrapf(ErrInvalidMethodInput, "expect %v arguments got %v", mt.NumIn()-1, len(args))
	}
	if mt.In(0) != reflect.TypeOf(cc) {
		return nil, errors.Wrap(ErrInvalidMethodInput, "first parameter must be the contract context")
	}
	ins := make([]reflect.Value, 0, mt.NumIn())
	ins = append(ins, reflect.ValueOf(cc))
	for i, arg := range args {
		want := mt.In(i + 1)
		if arg == nil {
			ins = append(ins, reflect.Zero(want))
			continue
		}
		av := reflect.ValueOf(arg)
		if av.Type() == want {
			ins = append(ins, av)
		} else if av.Type().ConvertibleTo(want) {
			ins = append(ins, av.Convert(want))
		} else {
			return nil, errors.Wrapf(ErrInvalidMethodInput, "argument %v expect %v got %v", i, want, av.Type())
		}
	}
	return ins, nil
}

func getResults(outs []reflect.Value) ([]interface{}, error) {
	results := []interface{}{}
	for _, out := range outs {
		if out.Type() == errType {
			if !out.IsNil() {
				return nil, out.Interface().(error)
			}
			continue
		}
		results = append(results, out.Interface())
	}
	return results, nil
}
