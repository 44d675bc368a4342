package amount

import (
	"testing"
)

func TestAmountArith(t *testing.T) {
	a := NewAmount(500)
	b := NewAmount(250)
	if !a.Sub(b).Equal(NewAmount(250)) {
		t.Errorf("sub expect 250 got %v", a.Sub(b))
	}
	if !a.Add(b).Equal(NewAmount(750)) {
		t.Errorf("add expect 750 got %v", a.Add(b))
	}
	if a.Less(b) {
		t.Errorf("500 < 250 should be false")
	}
	if !b.Sub(a).IsMinus() {
		t.Errorf("250 - 500 should be minus")
	}
}

func TestAmountBytesRoundTrip(t *testing.T) {
	a := MustParseAmount("340282366920938463463374607431768211455") // 2^128 - 1
	r := NewAmountFromBytes(a.Bytes())
	if !a.Equal(r) {
		t.Errorf("round trip expect %v got %v", a, r)
	}
	if !a.FitsMaxBits() {
		t.Errorf("2^128-1 must fit in 128 bits")
	}
	if a.Add(NewAmount(1)).FitsMaxBits() {
		t.Errorf("2^128 must not fit in 128 bits")
	}
}

func TestParseAmount(t *testing.T) {
	if _, err := ParseAmount("-1"); err == nil {
		t.Errorf("negative amount must be rejected")
	}
	if _, err := ParseAmount("12a"); err == nil {
		t.Errorf("non decimal amount must be rejected")
	}
	am, err := ParseAmount("500")
	if err != nil {
		t.Errorf("ParseAmount error = %+v", err)
	}
	if am.String() != "500" {
		t.Errorf("expect 500 got %v", am.String())
	}
}
