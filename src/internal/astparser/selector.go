package astparser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Selector 4 字节函数选择器（solc 的 functionSelector 字段，不带 0x 前缀）
type Selector [4]byte

// SelectorOf 计算函数签名的选择器，例如 "transfer(address,uint256)"
func SelectorOf(signature string) Selector {
	var s Selector
	copy(s[:], crypto.Keccak256([]byte(signature))[:4])
	return s
}

// Matches 判断选择器是否与规范化签名一致
func (s Selector) Matches(signature string) bool {
	want := SelectorOf(signature)
	return bytes.Equal(s[:], want[:])
}

func (s Selector) String() string {
	return hexutil.Encode(s[:])
}

func (s *Selector) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: functionSelector must be a string", ErrFieldShape)
	}
	b, err := hexutil.Decode("0x" + str)
	if err != nil {
		return fmt.Errorf("%w: functionSelector %q: %v", ErrFieldShape, str, err)
	}
	if len(b) != len(s) {
		return fmt.Errorf("%w: functionSelector %q has %d bytes, want 4", ErrFieldShape, str, len(b))
	}
	copy(s[:], b)
	return nil
}
