package equations

import (
	"strings"
	"unicode/utf8"
)

// Expr = operand | Expr op Expr | '(' Expr ')' | Expr Expr
// op = '+' | '-' | '*' | '/' | '^'
// operand = { letter | digit } with at most one '.'
//
// Juxtaposition (Expr Expr) is only recognized where Preprocess inserts an
// explicit '*'.

// Parse parses an expression into a tree. The text is preprocessed, converted
// to postfix, and built into a tree. Errors from malformed input implement
// InputError and match ErrInvalidExpression. A lone number or variable is a
// valid expression.
func Parse(text string) (*Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyExpressionError{Col: utf8.RuneCountInString(text) + 1}
	}
	s, cols := preprocess(text)
	toks, err := postfix(s, cols)
	if err != nil {
		return nil, err
	}
	return build(toks, utf8.RuneCountInString(text)+1)
}

// BuildTree builds a tree from space-separated postfix tokens, as produced by
// ToPostfix. A single-rune token that is one of the Operators is an operator;
// any other token is a leaf.
func BuildTree(postfix string) (*Node, error) {
	fields := strings.Fields(postfix)
	toks := make([]lexToken, len(fields))
	for i, f := range fields {
		toks[i] = lexToken{text: f, kind: tokenOperand}
		if isOp(f) {
			toks[i].kind = tokenOp
		}
	}
	return build(toks, 0)
}

// build consumes postfix tokens with a node stack. end is the column reported
// if there are no tokens.
func build(toks []lexToken, end int) (*Node, error) {
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{Col: end}
	}
	stack := make([]*Node, 0, len(toks)/2+1)
	// pos tracks the leftmost token of each stack entry for error reporting.
	pos := make([]lexToken, 0, cap(stack))
	for _, tok := range toks {
		if tok.kind != tokenOp {
			stack = append(stack, &Node{Value: tok.text})
			pos = append(pos, tok)
			continue
		}
		// The right operand was pushed most recently.
		if len(stack) < 2 {
			return nil, &OperandError{Col: tok.pos, Token: tok.text}
		}
		n := &Node{
			Value: tok.text,
			Left:  stack[len(stack)-2],
			Right: stack[len(stack)-1],
		}
		stack = append(stack[:len(stack)-2], n)
		pos = pos[:len(pos)-1]
	}
	if len(stack) != 1 {
		// The second entry is the first one no operator consumed.
		extra := pos[1]
		return nil, &OperandError{Col: extra.pos, Token: extra.text, Extra: true}
	}
	return stack[0], nil
}

// Eval is a shortcut to parse an expression, substitute variables, and
// evaluate the result.
func Eval(text string, vars Bindings) (float64, error) {
	n, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return Evaluate(Substitute(n, vars))
}
