package bin

import (
	"bytes"
	"io"
	"math/big"
	"reflect"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/amount"
	"github.com/meverselabs/tokenfactory/common/hash"
)

// type tags of the dynamic argument codec
const (
	tagUint8   = byte(0x01)
	tagUint16  = byte(0x02)
	tagUint32  = byte(0x03)
	tagUint64  = byte(0x04)
	tagBytes   = byte(0x05)
	tagString  = byte(0x06)
	tagBool    = byte(0x07)
	tagHash256 = byte(0x08)
	tagAddress = byte(0x09)
	tagAmount  = byte(0x0a)
	tagBigInt  = byte(0x0b)
)

type TypeWriter struct {
	sum int64
}

func NewTypeWriter() *TypeWriter {
	return &TypeWriter{
		sum: 0,
	}
}

// TypeWriteAll encodes the values with their type tags to a byte array
func TypeWriteAll(vs ...interface{}) []byte {
	tw := NewTypeWriter()
	w := bytes.NewBuffer([]byte{})
	if _, err := tw.WriteAll(w, vs...); err != nil {
		panic(err)
	}
	return w.Bytes()
}

func (tw *TypeWriter) WriteAll(w io.Writer, vs ...interface{}) (int64, error) {
	for _, v := range vs {
		if _, err := tw.writeThing(w, v); err != nil {
			return tw.sum, err
		}
	}
	return tw.sum, nil
}

func (tw *TypeWriter) writeThing(w io.Writer, v interface{}) (int64, error) {
	var err error
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int:
		_, err = tw.uint32(w, uint32(v.(int)))
	case reflect.Int16:
		_, err = tw.uint16(w, uint16(v.(int16)))
	case reflect.Int32:
		_, err = tw.uint32(w, uint32(v.(int32)))
	case reflect.Int64:
		_, err = tw.uint64(w, uint64(v.(int64)))
	case reflect.Uint8:
		_, err = tw.uint8(w, uint8(rv.Uint()))
	case reflect.Uint16:
		_, err = tw.uint16(w, uint16(rv.Uint()))
	case reflect.Uint32:
		_, err = tw.uint32(w, uint32(rv.Uint()))
	case reflect.Uint64:
		_, err = tw.uint64(w, rv.Uint())
	case reflect.String:
		_, err = tw.string(w, rv.String())
	case reflect.Bool:
		_, err = tw.bool(w, rv.Bool())
	case reflect.Slice:
		switch rv.Type() {
		case reflect.TypeOf([]byte{}):
			_, err = tw.bytes(w, v.([]byte))
		default:
			err = errors.Errorf("unsupported slice type %v", rv.Type())
		}
	default:
		switch rv.Type() {
		case reflect.TypeOf(hash.Hash256{}):
			_, err = tw.hash256(w, v.(hash.Hash256))
		case reflect.TypeOf(common.Address{}):
			_, err = tw.address(w, v.(common.Address))
		case reflect.TypeOf(&amount.Amount{}):
			_, err = tw.amount(w, v.(*amount.Amount))
		case reflect.TypeOf(&big.Int{}):
			_, err = tw.bigInt(w, v.(*big.Int))
		default:
			err = errors.Errorf("unsupported type %v", rv.Type())
		}
	}
	return tw.sum, err
}

func (tw *TypeWriter) writeType(w io.Writer, v byte) (int64, error) {
	if n, err := w.Write([]byte{v}); err != nil {
		return tw.sum, errors.WithStack(err)
	} else {
		tw.sum += int64(n)
		return tw.sum, nil
	}
}

func (tw *TypeWriter) uint8(w io.Writer, v uint8) (int64, error) {
	if _, err := tw.writeType(w, tagUint8); err != nil {
		return tw.sum, err
	}
	if n, err := WriteUint8(w, v); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) uint16(w io.Writer, v uint16) (int64, error) {
	if _, err := tw.writeType(w, tagUint16); err != nil {
		return tw.sum, err
	}
	if n, err := WriteUint16(w, v); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) uint32(w io.Writer, v uint32) (int64, error) {
	if _, err := tw.writeType(w, tagUint32); err != nil {
		return tw.sum, err
	}
	if n, err := WriteUint32(w, v); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) uint64(w io.Writer, v uint64) (int64, error) {
	if _, err := tw.writeType(w, tagUint64); err != nil {
		return tw.sum, err
	}
	if n, err := WriteUint64(w, v); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) bytes(w io.Writer, v []byte) (int64, error) {
	if _, err := tw.writeType(w, tagBytes); err != nil {
		return tw.sum, err
	}
	if n, err := WriteBytes(w, v); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) string(w io.Writer, v string) (int64, error) {
	if _, err := tw.writeType(w, tagString); err != nil {
		return tw.sum, err
	}
	if n, err := WriteString(w, v); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) bool(w io.Writer, v bool) (int64, error) {
	if _, err := tw.writeType(w, tagBool); err != nil {
		return tw.sum, err
	}
	if n, err := WriteBool(w, v); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) hash256(w io.Writer, v hash.Hash256) (int64, error) {
	if _, err := tw.writeType(w, tagHash256); err != nil {
		return tw.sum, err
	}
	if n, err := WriteBytes(w, v.Bytes()); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) address(w io.Writer, v common.Address) (int64, error) {
	if _, err := tw.writeType(w, tagAddress); err != nil {
		return tw.sum, err
	}
	if n, err := WriteBytes(w, v[:]); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) amount(w io.Writer, v *amount.Amount) (int64, error) {
	if _, err := tw.writeType(w, tagAmount); err != nil {
		return tw.sum, err
	}
	var bs []byte
	if v != nil {
		bs = v.Bytes()
	}
	if n, err := WriteBytes(w, bs); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) bigInt(w io.Writer, v *big.Int) (int64, error) {
	if _, err := tw.writeType(w, tagBigInt); err != nil {
		return tw.sum, err
	}
	var bs []byte
	if v != nil {
		bs = v.Bytes()
	}
	if n, err := WriteBytes(w, bs); err != nil {
		return tw.sum, err
	} else {
		tw.sum += n
		return tw.sum, nil
	}
}

func (tw *TypeWriter) Sum() int64 {
	return tw.sum
}
