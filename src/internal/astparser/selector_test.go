package astparser

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func TestSelectorOf(t *testing.T) {
	cases := map[string]string{
		"transfer(address,uint256)": "0xa9059cbb",
		"balanceOf(address)":        "0x70a08231",
		"set(uint256)":              "0x60fe47b1",
	}
	for sig, want := range cases {
		if got := SelectorOf(sig).String(); got != want {
			t.Errorf("SelectorOf(%q) = %s, want %s", sig, got, want)
		}
	}
}

func TestSelectorUnmarshal(t *testing.T) {
	var s Selector
	if err := json.Unmarshal([]byte(`"A9059CBB"`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	hash := crypto.Keccak256([]byte("transfer(address,uint256)"))
	if string(s[:]) != string(hash[:4]) {
		t.Fatalf("selector = %x, want %x", s, hash[:4])
	}
	if !s.Matches("transfer(address,uint256)") || s.Matches("transfer(address,uint)") {
		t.Fatalf("Matches gave wrong answer for %s", s)
	}

	for _, bad := range []string{`""`, `"0x"`, `"a9059cbb00"`, `"a9059cb"`, `12`} {
		var s Selector
		if err := json.Unmarshal([]byte(bad), &s); !errors.Is(err, ErrFieldShape) {
			t.Errorf("Unmarshal(%s) err = %v, want ErrFieldShape", bad, err)
		}
	}
}
