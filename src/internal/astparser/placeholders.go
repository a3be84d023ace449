package astparser

// 占位节点：只按 nodeType 识别，不建模任何字段。
// 需要字段时改为在 nodes.go 中定义带字段的结构体，kinds 表无需改动。

type ArrayTypeName struct{}
type Assignment struct{}
type BinaryOperation struct{}
type Break struct{}
type Conditional struct{}
type Continue struct{}
type DoWhileStatement struct{}
type ElementaryTypeName struct{}
type ElementaryTypeNameExpression struct{}
type EmitStatement struct{}
type EnumDefinition struct{}
type EnumValue struct{}
type ErrorDefinition struct{}
type EventDefinition struct{}
type ForStatement struct{}
type FunctionCallOptions struct{}
type FunctionTypeName struct{}
type IdentifierPath struct{}
type IfStatement struct{}
type ImportDirective struct{}
type IndexAccess struct{}
type IndexRangeAccess struct{}
type InheritanceSpecifier struct{}
type InlineAssembly struct{}
type Literal struct{}
type Mapping struct{}
type MemberAccess struct{}
type ModifierDefinition struct{}
type ModifierInvocation struct{}
type NewExpression struct{}
type OverrideSpecifier struct{}
type ParameterList struct{}
type PlaceholderStatement struct{}
type PragmaDirective struct{}
type Return struct{}
type RevertStatement struct{}
type StructDefinition struct{}
type StructuredDocumentation struct{}
type Throw struct{}
type TryCatchClause struct{}
type TryStatement struct{}
type TupleExpression struct{}
type UnaryOperation struct{}
type UncheckedBlock struct{}
type UserDefinedTypeName struct{}
type UserDefinedValueTypeDefinition struct{}
type UsingForDirective struct{}
type VariableDeclarationStatement struct{}
type WhileStatement struct{}
type YulAssignment struct{}
type YulBlock struct{}
type YulCase struct{}
type YulExpressionStatement struct{}
type YulFunctionCall struct{}
type YulIdentifier struct{}
type YulLiteral struct{}
type YulSwitch struct{}
type YulTypedName struct{}
type YulVariableDeclaration struct{}

func (*ArrayTypeName) Type() NodeType                  { return NodeArrayTypeName }
func (*Assignment) Type() NodeType                     { return NodeAssignment }
func (*BinaryOperation) Type() NodeType                { return NodeBinaryOperation }
func (*Break) Type() NodeType                          { return NodeBreak }
func (*Conditional) Type() NodeType                    { return NodeConditional }
func (*Continue) Type() NodeType                       { return NodeContinue }
func (*DoWhileStatement) Type() NodeType               { return NodeDoWhileStatement }
func (*ElementaryTypeName) Type() NodeType             { return NodeElementaryTypeName }
func (*ElementaryTypeNameExpression) Type() NodeType   { return NodeElementaryTypeNameExpression }
func (*EmitStatement) Type() NodeType                  { return NodeEmitStatement }
func (*EnumDefinition) Type() NodeType                 { return NodeEnumDefinition }
func (*EnumValue) Type() NodeType                      { return NodeEnumValue }
func (*ErrorDefinition) Type() NodeType                { return NodeErrorDefinition }
func (*EventDefinition) Type() NodeType                { return NodeEventDefinition }
func (*ForStatement) Type() NodeType                   { return NodeForStatement }
func (*FunctionCallOptions) Type() NodeType            { return NodeFunctionCallOptions }
func (*FunctionTypeName) Type() NodeType               { return NodeFunctionTypeName }
func (*IdentifierPath) Type() NodeType                 { return NodeIdentifierPath }
func (*IfStatement) Type() NodeType                    { return NodeIfStatement }
func (*ImportDirective) Type() NodeType                { return NodeImportDirective }
func (*IndexAccess) Type() NodeType                    { return NodeIndexAccess }
func (*IndexRangeAccess) Type() NodeType               { return NodeIndexRangeAccess }
func (*InheritanceSpecifier) Type() NodeType           { return NodeInheritanceSpecifier }
func (*InlineAssembly) Type() NodeType                 { return NodeInlineAssembly }
func (*Literal) Type() NodeType                        { return NodeLiteral }
func (*Mapping) Type() NodeType                        { return NodeMapping }
func (*MemberAccess) Type() NodeType                   { return NodeMemberAccess }
func (*ModifierDefinition) Type() NodeType             { return NodeModifierDefinition }
func (*ModifierInvocation) Type() NodeType             { return NodeModifierInvocation }
func (*NewExpression) Type() NodeType                  { return NodeNewExpression }
func (*OverrideSpecifier) Type() NodeType              { return NodeOverrideSpecifier }
func (*ParameterList) Type() NodeType                  { return NodeParameterList }
func (*PlaceholderStatement) Type() NodeType           { return NodePlaceholderStatement }
func (*PragmaDirective) Type() NodeType                { return NodePragmaDirective }
func (*Return) Type() NodeType                         { return NodeReturn }
func (*RevertStatement) Type() NodeType                { return NodeRevertStatement }
func (*StructDefinition) Type() NodeType               { return NodeStructDefinition }
func (*StructuredDocumentation) Type() NodeType        { return NodeStructuredDocumentation }
func (*Throw) Type() NodeType                          { return NodeThrow }
func (*TryCatchClause) Type() NodeType                 { return NodeTryCatchClause }
func (*TryStatement) Type() NodeType                   { return NodeTryStatement }
func (*TupleExpression) Type() NodeType                { return NodeTupleExpression }
func (*UnaryOperation) Type() NodeType                 { return NodeUnaryOperation }
func (*UncheckedBlock) Type() NodeType                 { return NodeUncheckedBlock }
func (*UserDefinedTypeName) Type() NodeType            { return NodeUserDefinedTypeName }
func (*UserDefinedValueTypeDefinition) Type() NodeType { return NodeUserDefinedValueTypeDefinition }
func (*UsingForDirective) Type() NodeType              { return NodeUsingForDirective }
func (*VariableDeclarationStatement) Type() NodeType   { return NodeVariableDeclarationStatement }
func (*WhileStatement) Type() NodeType                 { return NodeWhileStatement }
func (*YulAssignment) Type() NodeType                  { return NodeYulAssignment }
func (*YulBlock) Type() NodeType                       { return NodeYulBlock }
func (*YulCase) Type() NodeType                        { return NodeYulCase }
func (*YulExpressionStatement) Type() NodeType         { return NodeYulExpressionStatement }
func (*YulFunctionCall) Type() NodeType                { return NodeYulFunctionCall }
func (*YulIdentifier) Type() NodeType                  { return NodeYulIdentifier }
func (*YulLiteral) Type() NodeType                     { return NodeYulLiteral }
func (*YulSwitch) Type() NodeType                      { return NodeYulSwitch }
func (*YulTypedName) Type() NodeType                   { return NodeYulTypedName }
func (*YulVariableDeclaration) Type() NodeType         { return NodeYulVariableDeclaration }

func (*ArrayTypeName) node()                  {}
func (*Assignment) node()                     {}
func (*BinaryOperation) node()                {}
func (*Break) node()                          {}
func (*Conditional) node()                    {}
func (*Continue) node()                       {}
func (*DoWhileStatement) node()               {}
func (*ElementaryTypeName) node()             {}
func (*ElementaryTypeNameExpression) node()   {}
func (*EmitStatement) node()                  {}
func (*EnumDefinition) node()                 {}
func (*EnumValue) node()                      {}
func (*ErrorDefinition) node()                {}
func (*EventDefinition) node()                {}
func (*ForStatement) node()                   {}
func (*FunctionCallOptions) node()            {}
func (*FunctionTypeName) node()               {}
func (*IdentifierPath) node()                 {}
func (*IfStatement) node()                    {}
func (*ImportDirective) node()                {}
func (*IndexAccess) node()                    {}
func (*IndexRangeAccess) node()               {}
func (*InheritanceSpecifier) node()           {}
func (*InlineAssembly) node()                 {}
func (*Literal) node()                        {}
func (*Mapping) node()                        {}
func (*MemberAccess) node()                   {}
func (*ModifierDefinition) node()             {}
func (*ModifierInvocation) node()             {}
func (*NewExpression) node()                  {}
func (*OverrideSpecifier) node()              {}
func (*ParameterList) node()                  {}
func (*PlaceholderStatement) node()           {}
func (*PragmaDirective) node()                {}
func (*Return) node()                         {}
func (*RevertStatement) node()                {}
func (*StructDefinition) node()               {}
func (*StructuredDocumentation) node()        {}
func (*Throw) node()                          {}
func (*TryCatchClause) node()                 {}
func (*TryStatement) node()                   {}
func (*TupleExpression) node()                {}
func (*UnaryOperation) node()                 {}
func (*UncheckedBlock) node()                 {}
func (*UserDefinedTypeName) node()            {}
func (*UserDefinedValueTypeDefinition) node() {}
func (*UsingForDirective) node()              {}
func (*VariableDeclarationStatement) node()   {}
func (*WhileStatement) node()                 {}
func (*YulAssignment) node()                  {}
func (*YulBlock) node()                       {}
func (*YulCase) node()                        {}
func (*YulExpressionStatement) node()         {}
func (*YulFunctionCall) node()                {}
func (*YulIdentifier) node()                  {}
func (*YulLiteral) node()                     {}
func (*YulSwitch) node()                      {}
func (*YulTypedName) node()                   {}
func (*YulVariableDeclaration) node()         {}

func (*Break) statementNode()                        {}
func (*Continue) statementNode()                     {}
func (*DoWhileStatement) statementNode()             {}
func (*EmitStatement) statementNode()                {}
func (*ForStatement) statementNode()                 {}
func (*IfStatement) statementNode()                  {}
func (*InlineAssembly) statementNode()               {}
func (*PlaceholderStatement) statementNode()         {}
func (*Return) statementNode()                       {}
func (*RevertStatement) statementNode()              {}
func (*TryStatement) statementNode()                 {}
func (*UncheckedBlock) statementNode()               {}
func (*VariableDeclarationStatement) statementNode() {}
func (*WhileStatement) statementNode()               {}

func (*Assignment) expressionNode()                   {}
func (*BinaryOperation) expressionNode()              {}
func (*Conditional) expressionNode()                  {}
func (*ElementaryTypeNameExpression) expressionNode() {}
func (*FunctionCallOptions) expressionNode()          {}
func (*IndexAccess) expressionNode()                  {}
func (*IndexRangeAccess) expressionNode()             {}
func (*Literal) expressionNode()                      {}
func (*MemberAccess) expressionNode()                 {}
func (*NewExpression) expressionNode()                {}
func (*TupleExpression) expressionNode()              {}
func (*UnaryOperation) expressionNode()               {}
