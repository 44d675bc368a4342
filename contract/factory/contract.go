package factory

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/amount"
	"github.com/meverselabs/tokenfactory/common/bin"
	"github.com/meverselabs/tokenfactory/core/types"
)

// resource provisioning of the dispatched action sequences. The caller of
// the entry point pays for these upfront; the factory never meters them.
var TokenStorageDepositCost = amount.NewAmount(1_000_000_000_000_000_000)

const (
	TokenDeploymentGas = types.Gas(5_000_000_000_000)
	DepositGas         = types.Gas(2_000_000_000_000)
	WithdrawCallGas    = types.Gas(2_000_000_000_000)
)

// HostCallMethod is the engine entry point relaying a call to the host ledger
const HostCallMethod = "Call"

// FactoryContract deploys one token sub-contract per host-ledger token
// under its own namespace and routes locker deposits to them. Burns on the
// deployed tokens come back through OnWithdraw and are relayed to the
// locker's contract on the host ledger.
type FactoryContract struct {
	identity types.AccountID
}

func (cont *FactoryContract) Identity() types.AccountID {
	return cont.identity
}

func (cont *FactoryContract) Init(identity types.AccountID) {
	cont.identity = identity
}

// OnCreate checks once that every derivable token sub-account identity
// fits the ledger naming limit and pins the engine and locker references.
func (cont *FactoryContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FactoryContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if len(cont.identity)+1+tokenPrefixLength > types.MaxAccountIDLength {
		return errors.Wrap(ErrIdentityTooLong, string(cont.identity))
	}
	if !data.Engine.IsValid() {
		return errors.WithStack(types.ErrInvalidAccountID)
	}
	cc.SetContractData([]byte{tagEngineAccount}, []byte(data.Engine))
	cc.SetContractData([]byte{tagLockerAddress}, data.Locker[:])
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *FactoryContract) assertLocker(cc *types.ContractContext) error {
	if cc.From() != cont.LockerAccountID(cc) {
		return errors.Wrap(ErrOnlyLocker, string(cc.From()))
	}
	return nil
}

// tokenBinary returns the current deployable binary and its version or
// fails if no binary is available
func (cont *FactoryContract) tokenBinary(cc *types.ContractContext) ([]byte, uint32, error) {
	binary := cc.ContractData([]byte{tagTokenBinary})
	if len(binary) == 0 {
		return nil, 0, errors.WithStack(ErrBinaryNotAvailable)
	}
	return binary, cont.TokenBinaryVersion(cc), nil
}

func (cont *FactoryContract) tokenExists(cc *types.ContractContext, id types.AccountID) bool {
	return len(cc.ContractData(makeTokenKey(id))) > 0
}

// registerToken records the deployed version of the token sub-account.
// The entry must not exist yet: overwriting it would desynchronize the
// recorded version from the actually deployed code.
func (cont *FactoryContract) registerToken(cc *types.ContractContext, id types.AccountID, version uint32) {
	cc.SetContractData(makeTokenKey(id), bin.Uint32Bytes(version))
}

// deployToken records the registry entry and emits the all-or-nothing
// create+deploy+initialize sequence for the token sub-account. The registry
// commit happens synchronously before the sequence is dispatched, so a
// second deposit arriving before the sequence runs still routes as a
// direct credit.
func (cont *FactoryContract) deployToken(cc *types.ContractContext, id types.AccountID) (*types.Promise, error) {
	binary, version, err := cont.tokenBinary(cc)
	if err != nil {
		return nil, err
	}
	cont.registerToken(cc, id, version)
	p := cc.Promise(id).
		CreateAccount().
		DeployContract(binary).
		FunctionCall(types.InitMethod, nil, TokenStorageDepositCost, TokenDeploymentGas)
	return p, nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// SetTokenBinary replaces the deployable binary of the token sub-contracts
// and bumps the binary version. Already deployed tokens keep the version
// they were deployed with and SHOULD be upgraded out of band.
func (cont *FactoryContract) SetTokenBinary(cc *types.ContractContext, binary []byte) error {
	// TODO: replace the self check with an Owner role
	if cc.From() != cont.identity {
		return errors.Wrap(ErrOnlySelf, string(cc.From()))
	}
	if len(binary) == 0 {
		return errors.WithStack(ErrBinaryNotAvailable)
	}
	cc.SetContractData([]byte{tagTokenBinary}, binary)
	cc.SetContractData([]byte{tagTokenBinaryVersion}, bin.Uint32Bytes(cont.TokenBinaryVersion(cc)+1))
	return nil
}

// CreateToken deploys the current binary in a sub-account without crediting
// anyone. Only the locker can call this method.
func (cont *FactoryContract) CreateToken(cc *types.ContractContext, token common.Address) (*types.Promise, error) {
	if err := cont.assertLocker(cc); err != nil {
		return nil, err
	}
	id := TokenAccountID(token, cont.identity)
	if cont.tokenExists(cc, id) {
		return nil, errors.Wrap(ErrExistToken, string(id))
	}
	return cont.deployToken(cc, id)
}

// OnDeposit is called by the locker when tokens were locked on the host
// ledger. The same amount is credited to the receiver on the representative
// token sub-contract, deploying it first if this is the first deposit for
// the token.
func (cont *FactoryContract) OnDeposit(cc *types.ContractContext, token common.Address, receiver types.AccountID, Amount *amount.Amount) (*types.Promise, error) {
	if err := cont.assertLocker(cc); err != nil {
		return nil, err
	}
	// amounts wider than the unlock payload slot must never be credited
	if Amount == nil || !Amount.FitsMaxBits() {
		return nil, errors.WithStack(ErrAmountOverflow)
	}
	id := TokenAccountID(token, cont.identity)
	creditArgs := bin.TypeWriteAll(string(receiver), Amount)
	if !cont.tokenExists(cc, id) {
		p, err := cont.deployToken(cc, id)
		if err != nil {
			return nil, err
		}
		return p.FunctionCall("Deposit", creditArgs, amount.NewAmount(0), DepositGas), nil
	}
	return cc.Promise(id).FunctionCall("Deposit", creditArgs, amount.NewAmount(0), DepositGas), nil
}

// OnWithdraw is called by a token sub-contract after it burned the caller's
// balance. The locker contract on the host ledger is called to unlock the
// equivalent amount for the receiver address.
//
// There is no role check here: the caller identity itself is decoded into
// the token address, so only accounts shaped like token sub-accounts can
// relay, and each one can only unlock its own token. An error here fails
// the burning invocation with it, so burned value is never stranded.
func (cont *FactoryContract) OnWithdraw(cc *types.ContractContext, receiver common.Address, Amount *amount.Amount) (*types.Promise, error) {
	token, err := TokenAddressOfAccountID(cc.From())
	if err != nil {
		return nil, err
	}
	input, err := ABIEncodeWithdraw(token, receiver, Amount)
	if err != nil {
		return nil, err
	}
	call := &CallArgs{
		Contract: cont.Locker(cc),
		Input:    input,
	}
	bs, _, err := bin.WriterToBytes(call)
	if err != nil {
		return nil, err
	}
	p := cc.Promise(cont.Engine(cc)).
		FunctionCall(HostCallMethod, bin.TypeWriteAll(bs), amount.NewAmount(0), WithdrawCallGas)
	return p, nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

// Engine returns the engine account bridging to the host ledger
func (cont *FactoryContract) Engine(cc *types.ContractContext) types.AccountID {
	return types.AccountID(cc.ContractData([]byte{tagEngineAccount}))
}

// Locker returns the host address of the locker contract
func (cont *FactoryContract) Locker(cc *types.ContractContext) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagLockerAddress}))
}

// LockerAccountID returns the representative account id of the locker on
// this ledger
func (cont *FactoryContract) LockerAccountID(cc *types.ContractContext) types.AccountID {
	return types.SubAccountID(cont.Locker(cc).Hex(), cont.Engine(cc))
}

// TokenBinaryVersion returns the version of the current token binary
func (cont *FactoryContract) TokenBinaryVersion(cc *types.ContractContext) uint32 {
	bs := cc.ContractData([]byte{tagTokenBinaryVersion})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}

// IsToken returns the token sub-contract of the host address is deployed
// or not
func (cont *FactoryContract) IsToken(cc *types.ContractContext, token common.Address) bool {
	return cont.tokenExists(cc, TokenAccountID(token, cont.identity))
}

// TokenVersion returns the binary version the token sub-contract was
// deployed with
func (cont *FactoryContract) TokenVersion(cc *types.ContractContext, token common.Address) (uint32, error) {
	bs := cc.ContractData(makeTokenKey(TokenAccountID(token, cont.identity)))
	if len(bs) == 0 {
		return 0, errors.Wrap(ErrNotExistToken, token.String())
	}
	return bin.Uint32(bs), nil
}
