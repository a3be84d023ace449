package astparser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// UnknownHook 每遇到一个未登记的 nodeType 调用一次
type UnknownHook func(tag string, id int, path string)

type options struct {
	maxDepth  int
	onUnknown UnknownHook
}

type Option func(*options)

// WithMaxDepth 限制嵌套深度，0 表示不限制
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// WithUnknownHook 注册未知节点回调。DecodeCompactOutput 会在多个 goroutine 中
// 同时调用它，h 必须并发安全
func WithUnknownHook(h UnknownHook) Option {
	return func(o *options) { o.onUnknown = h }
}

// Decode 把一份紧凑 AST JSON 解码为节点树，根节点可以是任意种类
func Decode(data []byte, opts ...Option) (Node, error) {
	d := newDecoder(opts)
	var root json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &DecodeError{Path: "$", Err: fmt.Errorf("%w: %v", ErrSyntax, err)}
	}
	return d.decodeNode(root, "$", 0, 0)
}

// DecodeSourceUnit 解码并要求根节点为 SourceUnit
func DecodeSourceUnit(data []byte, opts ...Option) (*SourceUnit, error) {
	n, err := Decode(data, opts...)
	if err != nil {
		return nil, err
	}
	su, ok := n.(*SourceUnit)
	if !ok {
		return nil, &DecodeError{
			Path: "$",
			Tag:  tagOf(n),
			Err:  fmt.Errorf("%w: root is %s, want SourceUnit", ErrPosition, tagOf(n)),
		}
	}
	return su, nil
}

func (su *SourceUnit) UnmarshalJSON(data []byte) error {
	n, err := DecodeSourceUnit(data)
	if err != nil {
		return err
	}
	*su = *n
	return nil
}

func tagOf(n Node) string {
	if u, ok := n.(*Unknown); ok {
		return u.Tag
	}
	return Classify(n).String()
}

type decoder struct {
	opts options
}

func newDecoder(opts []Option) *decoder {
	d := &decoder{}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// fieldDecoder 由带字段的节点实现；占位节点不实现，只按 tag 识别
type fieldDecoder interface {
	decodeFields(o *object) error
}

// decodeNode 解码一个节点；want 非 0 时只接受该位置允许的种类。
// 每一层都把整个子树重新扫描为 map[string]json.RawMessage，总开销约为
// O(文档大小 × 深度)；solc 输出的嵌套通常不深，需要时用 WithMaxDepth 限制
func (d *decoder) decodeNode(raw json.RawMessage, path string, depth int, want position) (Node, error) {
	if d.opts.maxDepth > 0 && depth > d.opts.maxDepth {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("%w: limit %d", ErrTooDeep, d.opts.maxDepth)}
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil || members == nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("%w: expected object, got %s", ErrFieldShape, truncateRaw(raw))}
	}

	o := &object{d: d, members: members, path: path, depth: depth}

	// id 先读出来，只用于报错上下文；是否必需由各节点自己决定
	if rawID, ok := members["id"]; ok {
		if err := json.Unmarshal(rawID, &o.id); err == nil {
			o.hasID = true
		}
	}

	rawTag, ok := members["nodeType"]
	if !ok || isNull(rawTag) {
		return nil, o.fail("nodeType", ErrMissingTag)
	}
	if err := json.Unmarshal(rawTag, &o.tag); err != nil {
		return nil, o.fail("nodeType", fmt.Errorf("%w: nodeType must be a string", ErrFieldShape))
	}

	t, known := ParseNodeType(o.tag)
	if want != 0 && (!known || kinds[t].pos&want == 0) {
		return nil, &DecodeError{
			Path:  path,
			Tag:   o.tag,
			ID:    o.id,
			HasID: o.hasID,
			Err:   fmt.Errorf("%w: %s is not %s", ErrPosition, o.tag, want),
		}
	}
	if !known {
		return d.decodeUnknown(o)
	}

	n := kinds[t].newNode()
	if fd, ok := n.(fieldDecoder); ok {
		if err := fd.decodeFields(o); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (d *decoder) decodeUnknown(o *object) (Node, error) {
	if !o.hasID {
		return nil, o.fail("id", fmt.Errorf("%w: %q has no usable id", ErrMissingFallback, o.tag))
	}
	u := &Unknown{Tag: o.tag, ID: o.id}
	for _, field := range []string{"nodes", "statements"} {
		if raw, ok := o.members[field]; !ok || isNull(raw) {
			continue
		}
		nodes, err := o.nodes(field, true)
		if err != nil {
			return nil, err
		}
		u.ChildField = field
		u.Nodes = nodes
		break
	}
	if u.ChildField == "" {
		return nil, o.fail("nodes", fmt.Errorf("%w: %q has no nodes or statements", ErrMissingFallback, o.tag))
	}
	if d.opts.onUnknown != nil {
		d.opts.onUnknown(u.Tag, u.ID, o.path)
	}
	return u, nil
}

// object 是一个正在解码的 JSON 对象，字段读取出错时带上路径、tag、id
type object struct {
	d       *decoder
	members map[string]json.RawMessage
	path    string
	depth   int
	tag     string
	id      int
	hasID   bool
}

func (o *object) fail(field string, err error) error {
	return &DecodeError{Path: o.path + "." + field, Tag: o.tag, ID: o.id, HasID: o.hasID, Err: err}
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// required 读取必需的标量 / 枚举字段
func (o *object) required(field string, dst any) error {
	raw, ok := o.members[field]
	if !ok || isNull(raw) {
		return o.fail(field, ErrMissingField)
	}
	return o.unmarshal(field, raw, dst)
}

// optional 字段缺失或为 null 时保持零值
func (o *object) optional(field string, dst any) (bool, error) {
	raw, ok := o.members[field]
	if !ok || isNull(raw) {
		return false, nil
	}
	return true, o.unmarshal(field, raw, dst)
}

func (o *object) unmarshal(field string, raw json.RawMessage, dst any) error {
	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidEnum) || errors.Is(err, ErrFieldShape) {
		return o.fail(field, err)
	}
	return o.fail(field, fmt.Errorf("%w: %v", ErrFieldShape, err))
}

func (o *object) array(field string, required bool) ([]json.RawMessage, bool, error) {
	raw, ok := o.members[field]
	if !ok || isNull(raw) {
		if required {
			return nil, false, o.fail(field, ErrMissingField)
		}
		return nil, false, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, o.fail(field, fmt.Errorf("%w: expected array, got %s", ErrFieldShape, truncateRaw(raw)))
	}
	return items, true, nil
}

func (o *object) child(field string, i int) string {
	if i < 0 {
		return o.path + "." + field
	}
	return o.path + "." + field + "[" + strconv.Itoa(i) + "]"
}

// nodes 读取任意种类的子节点列表；存在时返回非 nil 切片
func (o *object) nodes(field string, required bool) ([]Node, error) {
	items, _, err := o.array(field, required)
	if err != nil {
		return nil, err
	}
	out := make([]Node, 0, len(items))
	for i, item := range items {
		n, err := o.d.decodeNode(item, o.child(field, i), o.depth+1, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (o *object) statements(field string) ([]Statement, error) {
	items, _, err := o.array(field, true)
	if err != nil {
		return nil, err
	}
	out := make([]Statement, 0, len(items))
	for i, item := range items {
		s, err := o.d.decodeStatement(item, o.child(field, i), o.depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (o *object) expression(field string) (Expression, error) {
	raw, ok := o.members[field]
	if !ok || isNull(raw) {
		return nil, o.fail(field, ErrMissingField)
	}
	return o.d.decodeExpression(raw, o.child(field, -1), o.depth+1)
}

func (o *object) expressions(field string) ([]Expression, error) {
	items, present, err := o.array(field, false)
	if err != nil || !present {
		return nil, err
	}
	out := make([]Expression, 0, len(items))
	for i, item := range items {
		e, err := o.d.decodeExpression(item, o.child(field, i), o.depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// block 读取可选的 Block 字段（函数体）
func (o *object) block(field string) (*Block, error) {
	raw, ok := o.members[field]
	if !ok || isNull(raw) {
		return nil, nil
	}
	n, err := o.d.decodeNode(raw, o.child(field, -1), o.depth+1, 0)
	if err != nil {
		return nil, err
	}
	b, ok := n.(*Block)
	if !ok {
		return nil, o.fail(field, fmt.Errorf("%w: %s is not a Block", ErrPosition, tagOf(n)))
	}
	return b, nil
}

func (d *decoder) decodeStatement(raw json.RawMessage, path string, depth int) (Statement, error) {
	n, err := d.decodeNode(raw, path, depth, posStatement)
	if err != nil {
		return nil, err
	}
	return n.(Statement), nil
}

func (d *decoder) decodeExpression(raw json.RawMessage, path string, depth int) (Expression, error) {
	n, err := d.decodeNode(raw, path, depth, posExpression)
	if err != nil {
		return nil, err
	}
	return n.(Expression), nil
}

func (n *SourceUnit) decodeFields(o *object) error {
	if err := o.required("id", &n.ID); err != nil {
		return err
	}
	if _, err := o.optional("src", &n.Src); err != nil {
		return err
	}
	if _, err := o.optional("absolutePath", &n.AbsolutePath); err != nil {
		return err
	}
	nodes, err := o.nodes("nodes", true)
	if err != nil {
		return err
	}
	n.Nodes = nodes
	return nil
}

func (n *ContractDefinition) decodeFields(o *object) error {
	if err := o.required("id", &n.ID); err != nil {
		return err
	}
	if err := o.required("name", &n.Name); err != nil {
		return err
	}
	if _, err := o.optional("src", &n.Src); err != nil {
		return err
	}
	if _, err := o.optional("contractKind", &n.ContractKind); err != nil {
		return err
	}
	if _, err := o.optional("abstract", &n.Abstract); err != nil {
		return err
	}
	nodes, err := o.nodes("nodes", true)
	if err != nil {
		return err
	}
	n.Nodes = nodes
	return nil
}

func (n *FunctionDefinition) decodeFields(o *object) error {
	if err := o.required("id", &n.ID); err != nil {
		return err
	}
	if err := o.required("name", &n.Name); err != nil {
		return err
	}
	if err := o.required("kind", &n.Kind); err != nil {
		return err
	}
	if err := o.required("visibility", &n.Visibility); err != nil {
		return err
	}
	if err := o.required("stateMutability", &n.StateMutability); err != nil {
		return err
	}
	if _, err := o.optional("src", &n.Src); err != nil {
		return err
	}
	var sel Selector
	hasSel, err := o.optional("functionSelector", &sel)
	if err != nil {
		return err
	}
	if hasSel {
		n.FunctionSelector = &sel
	}
	hasImplemented, err := o.optional("implemented", &n.Implemented)
	if err != nil {
		return err
	}
	body, err := o.block("body")
	if err != nil {
		return err
	}
	n.Body = body
	if !hasImplemented {
		n.Implemented = body != nil
	} else if n.Implemented && body == nil {
		return o.fail("body", fmt.Errorf("%w: implemented function has no body", ErrMissingField))
	}
	nodes, err := o.nodes("nodes", false)
	if err != nil {
		return err
	}
	n.Nodes = nodes
	return nil
}

func (n *VariableDeclaration) decodeFields(o *object) error {
	if err := o.required("id", &n.ID); err != nil {
		return err
	}
	if err := o.required("name", &n.Name); err != nil {
		return err
	}
	if err := o.required("visibility", &n.Visibility); err != nil {
		return err
	}
	if _, err := o.optional("src", &n.Src); err != nil {
		return err
	}
	if _, err := o.optional("stateVariable", &n.StateVariable); err != nil {
		return err
	}
	if _, err := o.optional("constant", &n.Constant); err != nil {
		return err
	}
	nodes, err := o.nodes("nodes", false)
	if err != nil {
		return err
	}
	n.Nodes = nodes
	return nil
}

func (n *Block) decodeFields(o *object) error {
	if err := o.required("id", &n.ID); err != nil {
		return err
	}
	if err := o.required("src", &n.Src); err != nil {
		return err
	}
	stmts, err := o.statements("statements")
	if err != nil {
		return err
	}
	n.Statements = stmts
	return nil
}

func (n *ExpressionStatement) decodeFields(o *object) error {
	if err := o.required("id", &n.ID); err != nil {
		return err
	}
	if err := o.required("src", &n.Src); err != nil {
		return err
	}
	expr, err := o.expression("expression")
	if err != nil {
		return err
	}
	n.Expression = expr
	return nil
}

func (n *FunctionCall) decodeFields(o *object) error {
	if err := o.required("id", &n.ID); err != nil {
		return err
	}
	if err := o.required("src", &n.Src); err != nil {
		return err
	}
	expr, err := o.expression("expression")
	if err != nil {
		return err
	}
	n.Expression = expr
	args, err := o.expressions("arguments")
	if err != nil {
		return err
	}
	n.Arguments = args
	return nil
}

func (n *Identifier) decodeFields(o *object) error {
	if err := o.required("id", &n.ID); err != nil {
		return err
	}
	if err := o.required("src", &n.Src); err != nil {
		return err
	}
	if err := o.required("name", &n.Name); err != nil {
		return err
	}
	if _, err := o.optional("referencedDeclaration", &n.ReferencedDeclaration); err != nil {
		return err
	}
	return nil
}
