package astparser

// NodeType 节点种类判别值，与 solc 紧凑 AST 的 nodeType 一一对应
type NodeType int

// NodeUnknown 为零值：未登记的 nodeType 一律归入此类
const (
	NodeUnknown NodeType = iota
	NodeArrayTypeName
	NodeAssignment
	NodeBinaryOperation
	NodeBlock
	NodeBreak
	NodeConditional
	NodeContinue
	NodeContractDefinition
	NodeDoWhileStatement
	NodeElementaryTypeName
	NodeElementaryTypeNameExpression
	NodeEmitStatement
	NodeEnumDefinition
	NodeEnumValue
	NodeErrorDefinition
	NodeEventDefinition
	NodeExpressionStatement
	NodeForStatement
	NodeFunctionCall
	NodeFunctionCallOptions
	NodeFunctionDefinition
	NodeFunctionTypeName
	NodeIdentifier
	NodeIdentifierPath
	NodeIfStatement
	NodeImportDirective
	NodeIndexAccess
	NodeIndexRangeAccess
	NodeInheritanceSpecifier
	NodeInlineAssembly
	NodeLiteral
	NodeMapping
	NodeMemberAccess
	NodeModifierDefinition
	NodeModifierInvocation
	NodeNewExpression
	NodeOverrideSpecifier
	NodeParameterList
	NodePlaceholderStatement
	NodePragmaDirective
	NodeReturn
	NodeRevertStatement
	NodeSourceUnit
	NodeStructDefinition
	NodeStructuredDocumentation
	NodeThrow
	NodeTryCatchClause
	NodeTryStatement
	NodeTupleExpression
	NodeUnaryOperation
	NodeUncheckedBlock
	NodeUserDefinedTypeName
	NodeUserDefinedValueTypeDefinition
	NodeUsingForDirective
	NodeVariableDeclaration
	NodeVariableDeclarationStatement
	NodeWhileStatement
	NodeYulAssignment
	NodeYulBlock
	NodeYulCase
	NodeYulExpressionStatement
	NodeYulFunctionCall
	NodeYulIdentifier
	NodeYulLiteral
	NodeYulSwitch
	NodeYulTypedName
	NodeYulVariableDeclaration

	nodeTypeCount
)

type position uint8

const (
	posStatement position = 1 << iota
	posExpression
)

func (p position) String() string {
	switch p {
	case posStatement:
		return "a statement"
	case posExpression:
		return "an expression"
	}
	return "allowed here"
}

type kindInfo struct {
	tag     string
	pos     position
	newNode func() Node
}

// kinds 是唯一的节点登记表：解码、分类、语句 / 表达式位置都由它派生
var kinds = [nodeTypeCount]kindInfo{
	NodeUnknown:                        {tag: "Unknown"},
	NodeArrayTypeName:                  {"ArrayTypeName", 0, func() Node { return new(ArrayTypeName) }},
	NodeAssignment:                     {"Assignment", posExpression, func() Node { return new(Assignment) }},
	NodeBinaryOperation:                {"BinaryOperation", posExpression, func() Node { return new(BinaryOperation) }},
	NodeBlock:                          {"Block", posStatement, func() Node { return new(Block) }},
	NodeBreak:                          {"Break", posStatement, func() Node { return new(Break) }},
	NodeConditional:                    {"Conditional", posExpression, func() Node { return new(Conditional) }},
	NodeContinue:                       {"Continue", posStatement, func() Node { return new(Continue) }},
	NodeContractDefinition:             {"ContractDefinition", 0, func() Node { return new(ContractDefinition) }},
	NodeDoWhileStatement:               {"DoWhileStatement", posStatement, func() Node { return new(DoWhileStatement) }},
	NodeElementaryTypeName:             {"ElementaryTypeName", 0, func() Node { return new(ElementaryTypeName) }},
	NodeElementaryTypeNameExpression:   {"ElementaryTypeNameExpression", posExpression, func() Node { return new(ElementaryTypeNameExpression) }},
	NodeEmitStatement:                  {"EmitStatement", posStatement, func() Node { return new(EmitStatement) }},
	NodeEnumDefinition:                 {"EnumDefinition", 0, func() Node { return new(EnumDefinition) }},
	NodeEnumValue:                      {"EnumValue", 0, func() Node { return new(EnumValue) }},
	NodeErrorDefinition:                {"ErrorDefinition", 0, func() Node { return new(ErrorDefinition) }},
	NodeEventDefinition:                {"EventDefinition", 0, func() Node { return new(EventDefinition) }},
	NodeExpressionStatement:            {"ExpressionStatement", posStatement, func() Node { return new(ExpressionStatement) }},
	NodeForStatement:                   {"ForStatement", posStatement, func() Node { return new(ForStatement) }},
	NodeFunctionCall:                   {"FunctionCall", posExpression, func() Node { return new(FunctionCall) }},
	NodeFunctionCallOptions:            {"FunctionCallOptions", posExpression, func() Node { return new(FunctionCallOptions) }},
	NodeFunctionDefinition:             {"FunctionDefinition", 0, func() Node { return new(FunctionDefinition) }},
	NodeFunctionTypeName:               {"FunctionTypeName", 0, func() Node { return new(FunctionTypeName) }},
	NodeIdentifier:                     {"Identifier", posExpression, func() Node { return new(Identifier) }},
	NodeIdentifierPath:                 {"IdentifierPath", 0, func() Node { return new(IdentifierPath) }},
	NodeIfStatement:                    {"IfStatement", posStatement, func() Node { return new(IfStatement) }},
	NodeImportDirective:                {"ImportDirective", 0, func() Node { return new(ImportDirective) }},
	NodeIndexAccess:                    {"IndexAccess", posExpression, func() Node { return new(IndexAccess) }},
	NodeIndexRangeAccess:               {"IndexRangeAccess", posExpression, func() Node { return new(IndexRangeAccess) }},
	NodeInheritanceSpecifier:           {"InheritanceSpecifier", 0, func() Node { return new(InheritanceSpecifier) }},
	NodeInlineAssembly:                 {"InlineAssembly", posStatement, func() Node { return new(InlineAssembly) }},
	NodeLiteral:                        {"Literal", posExpression, func() Node { return new(Literal) }},
	NodeMapping:                        {"Mapping", 0, func() Node { return new(Mapping) }},
	NodeMemberAccess:                   {"MemberAccess", posExpression, func() Node { return new(MemberAccess) }},
	NodeModifierDefinition:             {"ModifierDefinition", 0, func() Node { return new(ModifierDefinition) }},
	NodeModifierInvocation:             {"ModifierInvocation", 0, func() Node { return new(ModifierInvocation) }},
	NodeNewExpression:                  {"NewExpression", posExpression, func() Node { return new(NewExpression) }},
	NodeOverrideSpecifier:              {"OverrideSpecifier", 0, func() Node { return new(OverrideSpecifier) }},
	NodeParameterList:                  {"ParameterList", 0, func() Node { return new(ParameterList) }},
	NodePlaceholderStatement:           {"PlaceholderStatement", posStatement, func() Node { return new(PlaceholderStatement) }},
	NodePragmaDirective:                {"PragmaDirective", 0, func() Node { return new(PragmaDirective) }},
	NodeReturn:                         {"Return", posStatement, func() Node { return new(Return) }},
	NodeRevertStatement:                {"RevertStatement", posStatement, func() Node { return new(RevertStatement) }},
	NodeSourceUnit:                     {"SourceUnit", 0, func() Node { return new(SourceUnit) }},
	NodeStructDefinition:               {"StructDefinition", 0, func() Node { return new(StructDefinition) }},
	NodeStructuredDocumentation:        {"StructuredDocumentation", 0, func() Node { return new(StructuredDocumentation) }},
	NodeThrow:                          {"Throw", 0, func() Node { return new(Throw) }},
	NodeTryCatchClause:                 {"TryCatchClause", 0, func() Node { return new(TryCatchClause) }},
	NodeTryStatement:                   {"TryStatement", posStatement, func() Node { return new(TryStatement) }},
	NodeTupleExpression:                {"TupleExpression", posExpression, func() Node { return new(TupleExpression) }},
	NodeUnaryOperation:                 {"UnaryOperation", posExpression, func() Node { return new(UnaryOperation) }},
	NodeUncheckedBlock:                 {"UncheckedBlock", posStatement, func() Node { return new(UncheckedBlock) }},
	NodeUserDefinedTypeName:            {"UserDefinedTypeName", 0, func() Node { return new(UserDefinedTypeName) }},
	NodeUserDefinedValueTypeDefinition: {"UserDefinedValueTypeDefinition", 0, func() Node { return new(UserDefinedValueTypeDefinition) }},
	NodeUsingForDirective:              {"UsingForDirective", 0, func() Node { return new(UsingForDirective) }},
	NodeVariableDeclaration:            {"VariableDeclaration", 0, func() Node { return new(VariableDeclaration) }},
	NodeVariableDeclarationStatement:   {"VariableDeclarationStatement", posStatement, func() Node { return new(VariableDeclarationStatement) }},
	NodeWhileStatement:                 {"WhileStatement", posStatement, func() Node { return new(WhileStatement) }},
	NodeYulAssignment:                  {"YulAssignment", 0, func() Node { return new(YulAssignment) }},
	NodeYulBlock:                       {"YulBlock", 0, func() Node { return new(YulBlock) }},
	NodeYulCase:                        {"YulCase", 0, func() Node { return new(YulCase) }},
	NodeYulExpressionStatement:         {"YulExpressionStatement", 0, func() Node { return new(YulExpressionStatement) }},
	NodeYulFunctionCall:                {"YulFunctionCall", 0, func() Node { return new(YulFunctionCall) }},
	NodeYulIdentifier:                  {"YulIdentifier", 0, func() Node { return new(YulIdentifier) }},
	NodeYulLiteral:                     {"YulLiteral", 0, func() Node { return new(YulLiteral) }},
	NodeYulSwitch:                      {"YulSwitch", 0, func() Node { return new(YulSwitch) }},
	NodeYulTypedName:                   {"YulTypedName", 0, func() Node { return new(YulTypedName) }},
	NodeYulVariableDeclaration:         {"YulVariableDeclaration", 0, func() Node { return new(YulVariableDeclaration) }},
}

var tagIndex = func() map[string]NodeType {
	m := make(map[string]NodeType, len(kinds))
	for t := NodeUnknown + 1; t < nodeTypeCount; t++ {
		m[kinds[t].tag] = t
	}
	return m
}()

// ParseNodeType 按线上 tag 查找种类；"Unknown" 不是合法的线上 tag
func ParseNodeType(tag string) (NodeType, bool) {
	t, ok := tagIndex[tag]
	return t, ok
}

// NodeTypes 返回全部已登记种类（不含 NodeUnknown），按声明顺序
func NodeTypes() []NodeType {
	out := make([]NodeType, 0, nodeTypeCount-1)
	for t := NodeUnknown + 1; t < nodeTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

func (t NodeType) String() string {
	if t < 0 || t >= nodeTypeCount {
		return "NodeType(invalid)"
	}
	return kinds[t].tag
}

// IsStatement 该种类能否出现在语句位置
func (t NodeType) IsStatement() bool {
	return t > NodeUnknown && t < nodeTypeCount && kinds[t].pos&posStatement != 0
}

// IsExpression 该种类能否出现在表达式位置
func (t NodeType) IsExpression() bool {
	return t > NodeUnknown && t < nodeTypeCount && kinds[t].pos&posExpression != 0
}
