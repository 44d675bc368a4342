package bin

import (
	"bytes"
	"testing"

	"github.com/meverselabs/tokenfactory/common"
	"github.com/meverselabs/tokenfactory/common/amount"
)

func TestWriteBytesLengthEscapes(t *testing.T) {
	for _, size := range []int{0, 1, 253, 254, 255, 65535, 65536} {
		bs := make([]byte, size)
		for i := range bs {
			bs[i] = byte(i)
		}
		var buffer bytes.Buffer
		wrote, err := WriteBytes(&buffer, bs)
		if err != nil {
			t.Fatal(size, err)
		}
		if wrote != int64(buffer.Len()) {
			t.Errorf("size %v: wrote %v buffered %v", size, wrote, buffer.Len())
		}
		got, read, err := ReadBytes(&buffer)
		if err != nil {
			t.Fatal(size, err)
		}
		if read != wrote {
			t.Errorf("size %v: read %v wrote %v", size, read, wrote)
		}
		if !bytes.Equal(got, bs) {
			t.Errorf("size %v: round trip mismatch", size)
		}
	}
}

func TestTypeCodecArgumentVector(t *testing.T) {
	addr := common.MustParseAddress("0x0102030405060708090a0b0c0d0e0f1011121314")
	bs := TypeWriteAll("alice", amount.MustParseAmount("500"), addr, uint64(7), []byte{0xde, 0xad}, true)

	args, err := TypeReadAll(bs, 6)
	if err != nil {
		t.Fatal(err)
	}
	if args[0].(string) != "alice" {
		t.Error("string", args[0])
	}
	if !args[1].(*amount.Amount).Equal(amount.MustParseAmount("500")) {
		t.Error("amount", args[1])
	}
	if args[2].(common.Address) != addr {
		t.Error("address", args[2])
	}
	if args[3].(uint64) != 7 {
		t.Error("uint64", args[3])
	}
	if !bytes.Equal(args[4].([]byte), []byte{0xde, 0xad}) {
		t.Error("bytes", args[4])
	}
	if !args[5].(bool) {
		t.Error("bool", args[5])
	}

	if _, err := TypeReadAll(bs, 7); err == nil {
		t.Error("expect count error")
	}
	if args, err := TypeReadAll(nil, -1); err != nil || len(args) != 0 {
		t.Error("empty vector", args, err)
	}
	if _, err := TypeReadAll([]byte{0x7f}, -1); err == nil {
		t.Error("expect unknown tag error")
	}
}
