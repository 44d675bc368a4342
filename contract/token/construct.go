package token

import (
	"io"

	"github.com/meverselabs/tokenfactory/common/bin"
)

// TokenContractConstruction carries the optional display metadata of a
// token. Factory deployments pass no construction args at all and fill
// the metadata in later.
type TokenContractConstruction struct {
	Name   string
	Symbol string
}

func (s *TokenContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Symbol); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *TokenContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Symbol); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
