package types

// Contract defines destination ledger contract functions
type Contract interface {
	Identity() AccountID
	Init(identity AccountID)
	OnCreate(cc *ContractContext, Args []byte) error
	Front() interface{}
}
