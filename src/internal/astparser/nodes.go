package astparser

// Node AST 节点。接口是封闭的：只有本包内的类型可以实现它。
type Node interface {
	Type() NodeType
	node()
}

// Statement 可出现在语句位置的节点（Block.Statements 等）
type Statement interface {
	Node
	statementNode()
}

// Expression 可出现在表达式位置的节点（ExpressionStatement.Expression 等）
type Expression interface {
	Node
	expressionNode()
}

// SourceUnit 根节点，对应一个源文件
type SourceUnit struct {
	ID           int
	Src          string
	AbsolutePath string
	Nodes        []Node
}

// ContractDefinition 合约 / 接口 / 库定义
type ContractDefinition struct {
	ID           int
	Src          string
	Name         string
	ContractKind string
	Abstract     bool
	Nodes        []Node
}

// FunctionDefinition 函数定义。未实现的函数（接口、抽象函数）Body 为 nil。
type FunctionDefinition struct {
	ID               int
	Src              string
	Name             string
	Kind             FunctionKind
	Visibility       Visibility
	StateMutability  StateMutability
	Implemented      bool
	FunctionSelector *Selector
	Body             *Block
	Nodes            []Node
}

// VariableDeclaration 状态变量、局部变量或参数
type VariableDeclaration struct {
	ID            int
	Src           string
	Name          string
	Visibility    Visibility
	StateVariable bool
	Constant      bool
	Nodes         []Node
}

type Block struct {
	ID         int
	Src        string
	Statements []Statement
}

type ExpressionStatement struct {
	ID         int
	Src        string
	Expression Expression
}

type FunctionCall struct {
	ID         int
	Src        string
	Expression Expression
	Arguments  []Expression
}

type Identifier struct {
	ID                    int
	Src                   string
	Name                  string
	ReferencedDeclaration int
}

// Unknown 未登记 nodeType 的兜底节点，保留原始 tag 以便区分具体种类。
// ChildField 记录子节点取自哪个成员（"nodes" 或 "statements"）。
type Unknown struct {
	Tag        string
	ID         int
	ChildField string
	Nodes      []Node
}

func (*SourceUnit) Type() NodeType          { return NodeSourceUnit }
func (*ContractDefinition) Type() NodeType  { return NodeContractDefinition }
func (*FunctionDefinition) Type() NodeType  { return NodeFunctionDefinition }
func (*VariableDeclaration) Type() NodeType { return NodeVariableDeclaration }
func (*Block) Type() NodeType               { return NodeBlock }
func (*ExpressionStatement) Type() NodeType { return NodeExpressionStatement }
func (*FunctionCall) Type() NodeType        { return NodeFunctionCall }
func (*Identifier) Type() NodeType          { return NodeIdentifier }
func (*Unknown) Type() NodeType             { return NodeUnknown }

func (*SourceUnit) node()          {}
func (*ContractDefinition) node()  {}
func (*FunctionDefinition) node()  {}
func (*VariableDeclaration) node() {}
func (*Block) node()               {}
func (*ExpressionStatement) node() {}
func (*FunctionCall) node()        {}
func (*Identifier) node()          {}
func (*Unknown) node()             {}

func (*Block) statementNode()               {}
func (*ExpressionStatement) statementNode() {}

func (*FunctionCall) expressionNode() {}
func (*Identifier) expressionNode()   {}

// Classify 返回节点的种类判别值
func Classify(n Node) NodeType {
	return n.Type()
}

// Children 返回节点声明的子节点列表。
// 只有 SourceUnit / ContractDefinition / FunctionDefinition / Unknown 带子节点列表，
// 其余节点返回 (nil, false)；函数体只能通过 FunctionDefinition.Body 访问。
func Children(n Node) ([]Node, bool) {
	switch v := n.(type) {
	case *SourceUnit:
		return nonNil(v.Nodes), true
	case *ContractDefinition:
		return nonNil(v.Nodes), true
	case *FunctionDefinition:
		return nonNil(v.Nodes), true
	case *Unknown:
		return nonNil(v.Nodes), true
	}
	return nil, false
}

func nonNil(nodes []Node) []Node {
	if nodes == nil {
		return []Node{}
	}
	return nodes
}
