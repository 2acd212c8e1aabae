// Package tree holds the parse tree produced by a shift-reduce parse: a
// plain labeled tree with an ASCII renderer, grounded in
// internal/ictiobus/types/tree.go's ParseTree.leveledStr.
package tree

import "strings"

// Node is one parse-tree node (spec.md §4.8, §6.3): Terminal nodes carry
// the literal token text they matched, non-terminal nodes carry the name
// of the symbol they were reduced to and the children produced by that
// reduction, in left-to-right order.
type Node struct {
	Label    string
	Terminal bool
	Children []*Node
}

// NewTerminal builds a leaf node for a shifted token.
func NewTerminal(label string) *Node {
	return &Node{Label: label, Terminal: true}
}

// NewNonTerminal builds an interior node for a reduced production.
func NewNonTerminal(label string, children []*Node) *Node {
	return &Node{Label: label, Children: children}
}

// String renders an ASCII tree using the box-drawing convention
// (└── / ├── / │) the teacher's ParseTree.leveledStr uses, and that
// original_source/lr_parser.py's _render_ascii also follows.
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb, "", true)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder, prefix string, last bool) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if last {
		connector = "└── "
		childPrefix = prefix + "    "
	}
	if prefix == "" {
		sb.WriteString(n.Label + "\n")
	} else {
		sb.WriteString(prefix + connector + n.Label + "\n")
	}
	for i, c := range n.Children {
		c.render(sb, childPrefix, i == len(n.Children)-1)
	}
}

// ToMap renders the node as a {label, terminal, children} map, the
// original_source/api.py tree_to_json shape plus a terminal flag, suitable for JSON encoding
// by a caller without this package importing encoding/json itself.
func (n *Node) ToMap() map[string]any {
	children := make([]map[string]any, len(n.Children))
	for i, c := range n.Children {
		children[i] = c.ToMap()
	}
	return map[string]any{
		"label":    n.Label,
		"terminal": n.Terminal,
		"children": children,
	}
}
