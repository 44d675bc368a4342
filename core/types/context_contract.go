package types

// ExecFunc runs a method of the contract at the target account with the
// calling contract as the signer
type ExecFunc func(cc *ContractContext, target AccountID, method string, args []interface{}) ([]interface{}, error)

// ContractContext is an context for the contract
type ContractContext struct {
	cont AccountID
	from AccountID
	ctx  *Context
	Exec ExecFunc
}

// From returns the direct caller of the current invocation
func (cc *ContractContext) From() AccountID {
	return cc.from
}

// Identity returns the account the contract is deployed at
func (cc *ContractContext) Identity() AccountID {
	return cc.cont
}

// ContractData returns the contract data of the name
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Data(cc.cont, "", name)
}

// SetContractData inserts the contract data of the name
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, "", name, value)
}

// AccountData returns the contract data of the name scoped by the account
func (cc *ContractContext) AccountData(id AccountID, name []byte) []byte {
	return cc.ctx.Data(cc.cont, id, name)
}

// SetAccountData inserts the contract data of the name scoped by the account
func (cc *ContractContext) SetAccountData(id AccountID, name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, id, name, value)
}

// IsExistAccount returns the account is created or not
func (cc *ContractContext) IsExistAccount(id AccountID) bool {
	return cc.ctx.IsExistAccount(id)
}

// IsContract returns a contract is deployed at the account or not
func (cc *ContractContext) IsContract(id AccountID) bool {
	return cc.ctx.IsContract(id)
}

// Promise records a new action batch against the target account. The batch
// is dispatched when the current invocation completes and executes outside
// of it; the returned handle only identifies the batch.
func (cc *ContractContext) Promise(target AccountID) *Promise {
	p := &Promise{
		creator: cc.cont,
		target:  target,
	}
	cc.ctx.recordPromise(p)
	return p
}
