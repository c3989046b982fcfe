package equations

import (
	"strings"
)

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// binop gets the binary operator for a token string. If there is no such
// operator, then the result has a prec of 0.
func binop(text string) operator {
	switch text {
	case "+", "-":
		return operator{1, false}
	case "*", "/":
		return operator{2, false}
	case "^":
		return operator{3, true}
	default:
		return operator{}
	}
}

// yields reports whether an operator already on the stack must be output
// before pushing the incoming operator in.
func (p operator) yields(in operator) bool {
	if p.prec != in.prec {
		return p.prec > in.prec
	}
	return !in.right
}

// ToPostfix converts preprocessed infix text to postfix, with tokens separated
// by single spaces. The text should already have had its implicit
// multiplications made explicit by Preprocess.
func ToPostfix(text string) (string, error) {
	toks, err := postfix(text, nil)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String(), nil
}

// postfix runs the shunting-yard algorithm over text. cols is passed to the
// lexer to report columns of the original input.
func postfix(text string, cols []int) ([]lexToken, error) {
	scan := lex(strings.NewReader(text), cols)
	var out, stack []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenEOF:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokenOpen {
					return nil, &BracketError{Col: top.pos, Left: top.text}
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			return out, nil
		case tokenOperand:
			out = append(out, tok)
		case tokenOpen:
			stack = append(stack, tok)
		case tokenClose:
			for len(stack) > 0 && stack[len(stack)-1].kind != tokenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &BracketError{Col: tok.pos, Right: tok.text}
			}
			// Discard the open bracket.
			stack = stack[:len(stack)-1]
		case tokenOp:
			in := binop(tok.text)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOp || !binop(top.text).yields(in) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			panic("equations: unknown token: " + tok.String())
		}
	}
}
