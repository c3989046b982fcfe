package equations

import (
	"strings"
	"unicode/utf8"
)

// Render writes a tree as infix text that parses back to a tree with the same
// value. Parentheses appear only where precedence or associativity requires
// them, and multiplication is written by juxtaposition when the operands'
// adjacent runes make that unambiguous, e.g. "2x", "xy", "(x+y)z". A nil tree
// renders as the empty string.
func Render(n *Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		b.WriteString(n.Value)
		return
	}
	left := renderChild(n.Left, n, false)
	right := renderChild(n.Right, n, true)
	b.WriteString(left)
	if n.Value != "*" || !juxtaposable(left, right) {
		b.WriteString(n.Value)
	}
	b.WriteString(right)
}

// renderChild renders a child of parent, parenthesized if needed.
func renderChild(child, parent *Node, right bool) string {
	s := Render(child)
	if child != nil && parens(child, parent, right) {
		return "(" + s + ")"
	}
	return s
}

// parens reports whether child must be parenthesized under parent.
func parens(child, parent *Node, right bool) bool {
	if !child.IsOperator() || !parent.IsOperator() {
		return false
	}
	c, p := binop(child.Value), binop(parent.Value)
	switch {
	case c.prec < p.prec:
		return true
	case c.prec == p.prec:
		// a-(b-c) and a/(b/c) need brackets on the right. ^ groups right to
		// left, so (a^b)^c needs them on the left; a^(b^c) keeps them too.
		switch parent.Value {
		case "-", "/":
			return right
		case "^":
			return true
		}
	}
	return false
}

// juxtaposable reports whether left and right can be written next to each
// other to mean multiplication.
func juxtaposable(left, right string) bool {
	if left == "" || right == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(left)
	first, _ := utf8.DecodeRuneInString(right)
	return implicitMul(last, first, false)
}
