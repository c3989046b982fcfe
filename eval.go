package equations

import (
	"errors"
	"math"
	"strconv"
)

// Bindings maps variable names to values. Names are case-sensitive.
type Bindings map[string]float64

// Substitute returns a copy of the tree rooted at n in which every leaf named
// in vars holds the value bound to it, written as the shortest decimal that
// parses back to the same float64. Leaves without a binding are copied
// unchanged and cause a NameError when the tree is evaluated. n itself is not
// modified.
func Substitute(n *Node, vars Bindings) *Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		if v, ok := vars[n.Value]; ok {
			return &Node{Value: strconv.FormatFloat(v, 'g', -1, 64)}
		}
		return &Node{Value: n.Value}
	}
	return &Node{
		Value: n.Value,
		Left:  Substitute(n.Left, vars),
		Right: Substitute(n.Right, vars),
	}
}

// Evaluate computes the value of a tree whose variables have been substituted.
// A leaf that is not a number results in a *NameError. Division by exactly
// zero results in a *DivisionError. Exponentiation follows math.Pow, so it may
// produce NaN or infinities rather than an error.
func Evaluate(n *Node) (float64, error) {
	if n == nil {
		return 0, &OperatorError{}
	}
	if n.IsLeaf() {
		v, ok := number(n.Value)
		if !ok {
			return 0, &NameError{Name: n.Value}
		}
		return v, nil
	}
	if !n.IsOperator() {
		return 0, &OperatorError{Operator: n.Value}
	}
	l, err := Evaluate(n.Left)
	if err != nil {
		return 0, err
	}
	r, err := Evaluate(n.Right)
	if err != nil {
		return 0, err
	}
	switch n.Value {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, &DivisionError{Dividend: l}
		}
		return l / r, nil
	case "^":
		return math.Pow(l, r), nil
	default:
		panic("equations: invalid operator " + n.Value)
	}
}

// number parses the value of a leaf. A leaf is a number if it is a decimal
// literal, ASCII digits with at most one point, or exactly the text Substitute
// writes for some float64. Literals beyond the range of float64 saturate to
// ±Inf or ±0.
func number(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if decimal(s) || (err == nil && strconv.FormatFloat(v, 'g', -1, 64) == s) {
		return v, true
	}
	return 0, false
}

// decimal reports whether s is a decimal literal.
func decimal(s string) bool {
	var digits, dot bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			digits = true
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits
}
