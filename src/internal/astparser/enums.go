package astparser

import (
	"encoding/json"
	"fmt"
)

// Visibility 可见性（函数 / 变量）
type Visibility string

const (
	VisibilityPrivate  Visibility = "private"
	VisibilityInternal Visibility = "internal"
	VisibilityPublic   Visibility = "public"
	VisibilityExternal Visibility = "external"
)

// StateMutability 函数状态可变性
type StateMutability string

const (
	MutabilityPayable    StateMutability = "payable"
	MutabilityNonPayable StateMutability = "nonpayable"
	MutabilityPure       StateMutability = "pure"
	MutabilityView       StateMutability = "view"
)

// FunctionKind 函数种类，线上格式为 camelCase
type FunctionKind string

const (
	KindConstructor  FunctionKind = "constructor"
	KindReceive      FunctionKind = "receive"
	KindFallback     FunctionKind = "fallback"
	KindFreeFunction FunctionKind = "freeFunction"
	KindFunction     FunctionKind = "function"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityInternal, VisibilityPublic, VisibilityExternal:
		return true
	}
	return false
}

func (v *Visibility) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnumString(data, "visibility")
	if err != nil {
		return err
	}
	if !Visibility(s).Valid() {
		return fmt.Errorf("%w: visibility %q", ErrInvalidEnum, s)
	}
	*v = Visibility(s)
	return nil
}

func (m StateMutability) String() string { return string(m) }

func (m StateMutability) Valid() bool {
	switch m {
	case MutabilityPayable, MutabilityNonPayable, MutabilityPure, MutabilityView:
		return true
	}
	return false
}

func (m *StateMutability) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnumString(data, "stateMutability")
	if err != nil {
		return err
	}
	if !StateMutability(s).Valid() {
		return fmt.Errorf("%w: stateMutability %q", ErrInvalidEnum, s)
	}
	*m = StateMutability(s)
	return nil
}

func (k FunctionKind) String() string { return string(k) }

func (k FunctionKind) Valid() bool {
	switch k {
	case KindConstructor, KindReceive, KindFallback, KindFreeFunction, KindFunction:
		return true
	}
	return false
}

// IsSpecial 构造函数 / fallback / receive 均视为入口
func (k FunctionKind) IsSpecial() bool {
	return k == KindConstructor || k == KindFallback || k == KindReceive
}

func (k *FunctionKind) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnumString(data, "kind")
	if err != nil {
		return err
	}
	if !FunctionKind(s).Valid() {
		return fmt.Errorf("%w: kind %q", ErrInvalidEnum, s)
	}
	*k = FunctionKind(s)
	return nil
}

// 大小写敏感：`Public` 或 `freefunction` 都不接受
func unmarshalEnumString(data []byte, field string) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("%w: %s must be a string, got %s", ErrInvalidEnum, field, truncateRaw(data))
	}
	return s, nil
}
