package astwalk

import "github.com/VectorBits/solast/src/internal/astparser"

// FunctionRef 函数及其所在合约
type FunctionRef struct {
	ContractName string
	Function     *astparser.FunctionDefinition
}

func (r FunctionRef) String() string {
	if r.ContractName == "" {
		return r.Function.Name
	}
	return r.ContractName + "." + r.Function.Name
}

// Functions 收集所有函数定义（含自由函数），按文档顺序。
// 归属合约按深度入栈，只有祖先中的 ContractDefinition 才算所属合约
func Functions(root astparser.Node) []FunctionRef {
	result := make([]FunctionRef, 0)
	var owners []string
	Walk(root, func(n astparser.Node, depth int) bool {
		owners = owners[:depth]
		owner := ""
		if depth > 0 {
			owner = owners[depth-1]
		}
		switch v := n.(type) {
		case *astparser.ContractDefinition:
			owners = append(owners, v.Name)
			return true
		case *astparser.FunctionDefinition:
			if v.Kind == astparser.KindFreeFunction {
				owner = ""
			}
			result = append(result, FunctionRef{ContractName: owner, Function: v})
		}
		owners = append(owners, owner)
		return true
	})
	return result
}

// IsEntryPoint 已实现且可从外部触发：public / external，或 constructor / fallback / receive
func IsEntryPoint(fn *astparser.FunctionDefinition) bool {
	if !fn.Implemented {
		return false
	}
	if fn.Kind.IsSpecial() {
		return true
	}
	if fn.Kind == astparser.KindFreeFunction {
		return false
	}
	return fn.Visibility == astparser.VisibilityPublic || fn.Visibility == astparser.VisibilityExternal
}

// EntryPoints 所有公开入口函数
func EntryPoints(root astparser.Node) []FunctionRef {
	result := make([]FunctionRef, 0)
	for _, ref := range Functions(root) {
		if IsEntryPoint(ref.Function) {
			result = append(result, ref)
		}
	}
	return result
}

// FindFunction 通过合约名与函数名查找；contractName 为空时只匹配函数名
func FindFunction(root astparser.Node, contractName, functionName string) *astparser.FunctionDefinition {
	refs := Functions(root)
	for _, ref := range refs {
		if ref.ContractName == contractName && ref.Function.Name == functionName {
			return ref.Function
		}
	}
	if contractName == "" {
		for _, ref := range refs {
			if ref.Function.Name == functionName {
				return ref.Function
			}
		}
	}
	return nil
}
