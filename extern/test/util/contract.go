package util

import (
	"bytes"
	"io"

	"github.com/meverselabs/tokenfactory/contract/factory"
	"github.com/meverselabs/tokenfactory/core/types"
)

func factoryConstructionArgs() io.WriterTo {
	return &factory.FactoryContractConstruction{
		Engine: EngineID,
		Locker: LockerAddress,
	}
}

// DeployContract deploys the registered class at the account, creating the
// account when needed
func (tc *TestContext) DeployContract(id types.AccountID, className string, contArgs io.WriterTo) types.Contract {
	ClassID, has := ClassMap[className]
	if !has {
		panic("unknown contract class " + className)
	}

	var args []byte
	if contArgs != nil {
		bf := &bytes.Buffer{}
		if _, err := contArgs.WriteTo(bf); err != nil {
			panic(err)
		}
		args = bf.Bytes()
	}

	cont, err := tc.Ctx.DeployContract(id, ClassID, args, id)
	if err != nil {
		panic(err)
	}
	return cont
}
