package factory

import (
	"io"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/bin"
	"github.com/meverselabs/tokenfactory/core/types"
)

// FactoryContractConstruction carries the immutable references of the
// factory: the engine account bridging to the host ledger and the host
// address of the locker. The locker account id used for authorization is
// derived from both and never stored separately.
type FactoryContractConstruction struct {
	Engine types.AccountID
	Locker common.Address
}

func (s *FactoryContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, string(s.Engine)); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Locker); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *FactoryContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	var engine string
	if sum, err := sr.String(r, &engine); err != nil {
		return sum, err
	}
	s.Engine = types.AccountID(engine)
	if sum, err := sr.Address(r, &s.Locker); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

// CallArgs is the envelope of a host-ledger call relayed through the
// engine account.
type CallArgs struct {
	Contract common.Address
	Input    []byte
}

func (s *CallArgs) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Contract); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, s.Input); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *CallArgs) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Contract); err != nil {
		return sum, err
	}
	if sum, err := sr.Bytes(r, &s.Input); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
