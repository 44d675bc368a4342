package util

import (
	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/contract/factory"
	"github.com/meverselabs/tokenfactory/contract/token"
	"github.com/meverselabs/tokenfactory/core/types"
)

var (
	// EngineID is the account bridging to the host ledger in tests
	EngineID = types.AccountID("engine")
	// FactoryID is the account the factory is deployed at in tests
	FactoryID = types.AccountID("factory")

	LockerAddress = common.MustParseAddress("0x477C578843cBe53C3568736347f640c2cdA4616F")
	// LockerID is the representative identity of the locker on this ledger
	LockerID = types.SubAccountID(LockerAddress.Hex(), EngineID)

	Users = []types.AccountID{
		types.AccountID("alice"),
		types.AccountID("bob"),
		types.AccountID("carol"),
	}
)

var ClassMap map[string]uint64

func init() {
	ClassMap = map[string]uint64{}
	RegisterContractClass(&factory.FactoryContract{}, "Factory")
	RegisterContractClass(&token.TokenContract{}, "Token")
	RegisterContractClass(&EngineContract{}, "Engine")
}

func RegisterContractClass(cont types.Contract, className string) uint64 {
	ClassID, err := types.RegisterContractType(cont)
	if err != nil {
		panic(err)
	}
	ClassMap[className] = ClassID
	return ClassID
}
