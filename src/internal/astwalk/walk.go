// Package astwalk 基于 astparser.Classify 与 astparser.Children 的通用遍历。
// 只沿子节点列表下行：函数体、表达式等专用字段不会被访问。
package astwalk

import "github.com/VectorBits/solast/src/internal/astparser"

// Walk 先序深度优先遍历；fn 返回 false 时跳过该节点的子树
func Walk(root astparser.Node, fn func(n astparser.Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n astparser.Node, depth int, fn func(astparser.Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	children, ok := astparser.Children(n)
	if !ok {
		return
	}
	for _, child := range children {
		walk(child, depth+1, fn)
	}
}

// Filter 按文档顺序收集指定种类的节点
func Filter(root astparser.Node, t astparser.NodeType) []astparser.Node {
	result := make([]astparser.Node, 0)
	Walk(root, func(n astparser.Node, _ int) bool {
		if astparser.Classify(n) == t {
			result = append(result, n)
		}
		return true
	})
	return result
}

// CountByType 统计各种类的节点数量
func CountByType(root astparser.Node) map[astparser.NodeType]int {
	counts := make(map[astparser.NodeType]int)
	Walk(root, func(n astparser.Node, _ int) bool {
		counts[astparser.Classify(n)]++
		return true
	})
	return counts
}

// UnknownTags 统计遇到的未建模 nodeType
func UnknownTags(root astparser.Node) map[string]int {
	tags := make(map[string]int)
	for _, n := range Filter(root, astparser.NodeUnknown) {
		tags[n.(*astparser.Unknown).Tag]++
	}
	return tags
}
