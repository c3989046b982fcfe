package equations

import (
	"sort"
	"strings"
)

// Node is a node of an expression tree. A leaf has neither child and its Value
// is a number or a variable name. An operator node has both children and its
// Value is one of the Operators. No node has exactly one child.
//
// Trees built by this package are never modified after construction. Each
// node is referenced only by its parent.
type Node struct {
	Value string `json:"value"`
	Left  *Node  `json:"left,omitempty"`
	Right *Node  `json:"right,omitempty"`
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// IsOperator reports whether n is an operator node.
func (n *Node) IsOperator() bool {
	return n.Left != nil && n.Right != nil && isOp(n.Value)
}

func isOp(s string) bool {
	return len(s) == 1 && strings.Contains(Operators, s)
}

// Clone returns a deep copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{Value: n.Value, Left: n.Left.Clone(), Right: n.Right.Clone()}
}

// Vars returns the sorted names of the variables in the tree, i.e. the values
// of leaves that are not numbers. Each name appears once.
func (n *Node) Vars() []string {
	names := make(map[string]bool)
	n.vars(names)
	r := make([]string, 0, len(names))
	for k := range names {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

func (n *Node) vars(names map[string]bool) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		if _, ok := number(n.Value); !ok {
			names[n.Value] = true
		}
		return
	}
	n.Left.vars(names)
	n.Right.vars(names)
}

// String renders the tree as normalized infix. It is the same as Render(n).
func (n *Node) String() string {
	return Render(n)
}

// Bracketed writes the tree with every operator node bracketed, alternating
// round and square brackets by depth. It is meant for inspecting tree shapes.
func (n *Node) Bracketed() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	if n == nil {
		// Missing children use invalid characters.
		b.WriteByte('$')
		return
	}
	if n.IsLeaf() {
		b.WriteString(n.Value)
		return
	}
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	n.Left.fmt(b, !square)
	b.WriteByte(' ')
	b.WriteString(n.Value)
	b.WriteByte(' ')
	n.Right.fmt(b, !square)
	b.WriteByte(r)
}
