package bin

import (
	"bytes"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/amount"
	"github.com/meverselabs/tokenfactory/common/hash"
)

type TypeReader struct {
	sum int64
}

// TypeReadAll decodes the tagged values of the byte array. When count is
// not negative at least count values must be present.
func TypeReadAll(bs []byte, count int) ([]interface{}, error) {
	if len(bs) == 0 {
		return []interface{}{}, nil
	}
	tr := &TypeReader{
		sum: 0,
	}
	data, _, err := tr.readAll(bytes.NewReader(bs))
	if err != nil {
		return nil, err
	}
	if count >= 0 && len(data) < count {
		return nil, errors.Errorf("invalid output count less then, %v", count)
	}
	return data, nil
}

func (tr *TypeReader) readAll(r io.Reader) ([]interface{}, int64, error) {
	var data []interface{}
	for {
		d, _, err := tr.read(r)
		if err != nil {
			if errors.Cause(err) == io.EOF {
				err = nil
			}
			return data, tr.sum, err
		}
		data = append(data, d)
	}
}

func (tr *TypeReader) read(r io.Reader) (interface{}, int64, error) {
	tag := make([]byte, 1)
	if n, err := FillBytes(r, tag); err != nil {
		tr.sum += n
		return nil, tr.sum, err
	} else {
		tr.sum += n
	}
	switch tag[0] {
	case tagUint8:
		v, n, err := ReadUint8(r)
		tr.sum += n
		return v, tr.sum, err
	case tagUint16:
		v, n, err := ReadUint16(r)
		tr.sum += n
		return v, tr.sum, err
	case tagUint32:
		v, n, err := ReadUint32(r)
		tr.sum += n
		return v, tr.sum, err
	case tagUint64:
		v, n, err := ReadUint64(r)
		tr.sum += n
		return v, tr.sum, err
	case tagBytes:
		v, n, err := ReadBytes(r)
		tr.sum += n
		return v, tr.sum, err
	case tagString:
		v, n, err := ReadString(r)
		tr.sum += n
		return v, tr.sum, err
	case tagBool:
		v, n, err := ReadBool(r)
		tr.sum += n
		return v, tr.sum, err
	case tagHash256:
		bs, n, err := ReadBytes(r)
		tr.sum += n
		if err != nil {
			return nil, tr.sum, err
		}
		if len(bs) != hash.Hash256Size {
			return nil, tr.sum, errors.WithStack(ErrInvalidLength)
		}
		var h hash.Hash256
		copy(h[:], bs)
		return h, tr.sum, nil
	case tagAddress:
		bs, n, err := ReadBytes(r)
		tr.sum += n
		if err != nil {
			return nil, tr.sum, err
		}
		if len(bs) != common.AddressSize {
			return nil, tr.sum, errors.WithStack(ErrInvalidLength)
		}
		var addr common.Address
		copy(addr[:], bs)
		return addr, tr.sum, nil
	case tagAmount:
		bs, n, err := ReadBytes(r)
		tr.sum += n
		if err != nil {
			return nil, tr.sum, err
		}
		return amount.NewAmountFromBytes(bs), tr.sum, nil
	case tagBigInt:
		bs, n, err := ReadBytes(r)
		tr.sum += n
		if err != nil {
			return nil, tr.sum, err
		}
		return big.NewInt(0).SetBytes(bs), tr.sum, nil
	}
	return nil, tr.sum, errors.WithStack(ErrUnknownTypeTag)
}

func (tr *TypeReader) Sum() int64 {
	return tr.sum
}
