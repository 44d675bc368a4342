package types

import (
	"strings"
	"testing"
)

func TestAccountIDIsValid(t *testing.T) {
	valid := []AccountID{
		"ok",
		"alice",
		"sub.alice",
		"a-b_c.d0",
		"0102030405060708090a0b0c0d0e0f1011121314.factory",
		AccountID(strings.Repeat("a", MaxAccountIDLength)),
	}
	for _, id := range valid {
		if !id.IsValid() {
			t.Error("expect valid:", id)
		}
	}
	invalid := []AccountID{
		"",
		"a",
		"Alice",
		"alice!",
		".alice",
		"alice.",
		"sub..alice",
		"-alice",
		"alice-",
		"sub.-alice",
		AccountID(strings.Repeat("a", MaxAccountIDLength+1)),
	}
	for _, id := range invalid {
		if id.IsValid() {
			t.Error("expect invalid:", id)
		}
	}
}

func TestAccountIDParent(t *testing.T) {
	if p := AccountID("alice").Parent(); p != "" {
		t.Error("top level parent", p)
	}
	if p := AccountID("sub.alice").Parent(); p != "alice" {
		t.Error("parent", p)
	}
	if p := AccountID("deep.sub.alice").Parent(); p != "sub.alice" {
		t.Error("nested parent", p)
	}
	if id := SubAccountID("deep", AccountID("sub.alice")); id != "deep.sub.alice" {
		t.Error("sub account id", id)
	}
}
