package util

import (
	"github.com/meverselabs/tokenfactory/common/bin"
	"github.com/meverselabs/tokenfactory/core/types"
)

var (
	tagEngineLastCall  = byte(0x01)
	tagEngineCallCount = byte(0x02)
)

// EngineContract stands in for the host-ledger bridge in tests. It records
// every relayed payload so tests can assert on what would have been sent
// to the host ledger.
type EngineContract struct {
	identity types.AccountID
}

func (cont *EngineContract) Identity() types.AccountID {
	return cont.identity
}

func (cont *EngineContract) Init(identity types.AccountID) {
	cont.identity = identity
}

func (cont *EngineContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	return nil
}

// Call records the relayed host call payload
func (cont *EngineContract) Call(cc *types.ContractContext, input []byte) error {
	cc.SetContractData([]byte{tagEngineLastCall}, input)
	cc.SetContractData([]byte{tagEngineCallCount}, bin.Uint32Bytes(cont.CallCount(cc)+1))
	return nil
}

// LastCall returns the payload of the last recorded host call
func (cont *EngineContract) LastCall(cc *types.ContractContext) []byte {
	return cc.ContractData([]byte{tagEngineLastCall})
}

// CallCount returns how many host calls were recorded
func (cont *EngineContract) CallCount(cc *types.ContractContext) uint32 {
	bs := cc.ContractData([]byte{tagEngineCallCount})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}

func (cont *EngineContract) Front() interface{} {
	return &engineFront{
		cont: cont,
	}
}

type engineFront struct {
	cont *EngineContract
}

func (f *engineFront) Call(cc *types.ContractContext, input []byte) error {
	return f.cont.Call(cc, input)
}

func (f *engineFront) LastCall(cc *types.ContractContext) []byte {
	return f.cont.LastCall(cc)
}

func (f *engineFront) CallCount(cc *types.ContractContext) uint32 {
	return f.cont.CallCount(cc)
}
