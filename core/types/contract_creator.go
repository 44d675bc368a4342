package types

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common/bin"
	"github.com/meverselabs/tokenfactory/common/hash"
)

var gContractTypeMap = map[uint64]reflect.Type{}
var gContractNameMap = map[uint64]string{}

// IMPORTANT: RegisterContractType must be called only at initialization time
// and never have to called concurrently with CreateContract, IsValidClassID,
// ContractName functions
func RegisterContractType(cont Contract) (uint64, error) {
	rt := reflect.TypeOf(cont)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	name := rt.Name()
	if pkgPath := rt.PkgPath(); len(pkgPath) > 0 {
		name = pkgPath + "." + name
	}
	h := hash.Hash([]byte(name))
	ClassID := bin.Uint64(h[len(h)-8:])

	if v, has := gContractNameMap[ClassID]; has {
		if name != v {
			return 0, errors.WithStack(ErrExistContractType)
		}
		return ClassID, nil
	}
	gContractNameMap[ClassID] = name
	gContractTypeMap[ClassID] = rt
	return ClassID, nil
}

// CreateContract instantiates the contract of the class at the identity
func CreateContract(ClassID uint64, identity AccountID) (Contract, error) {
	rt, has := gContractTypeMap[ClassID]
	if !has {
		return nil, errors.WithStack(ErrInvalidClassID)
	}
	cont := reflect.New(rt).Interface().(Contract)
	cont.Init(identity)
	return cont, nil
}

func IsValidClassID(ClassID uint64) bool {
	_, has := gContractTypeMap[ClassID]
	return has
}

func ContractName(ClassID uint64) string {
	return gContractNameMap[ClassID]
}

// ClassBinary returns the deployable binary of the class. On this ledger
// deployable code is addressed by its registered class id.
func ClassBinary(ClassID uint64) []byte {
	return bin.Uint64Bytes(ClassID)
}

// ClassIDOfBinary resolves the class id of a deployable binary
func ClassIDOfBinary(binary []byte) (uint64, error) {
	if len(binary) != 8 {
		return 0, errors.WithStack(ErrInvalidBinary)
	}
	ClassID := bin.Uint64(binary)
	if !IsValidClassID(ClassID) {
		return 0, errors.WithStack(ErrInvalidBinary)
	}
	return ClassID, nil
}
