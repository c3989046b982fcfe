package equations

import (
	"errors"
	"strconv"
)

// Sentinel errors for each class of failure. Every error returned by this
// package matches exactly one of them under errors.Is.
var (
	// ErrInvalidExpression is matched by errors resulting from malformed
	// input text.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrVariableNotFound is matched by errors from evaluating a variable with
	// no value.
	ErrVariableNotFound = errors.New("variable not found")
	// ErrDivisionByZero is matched by errors from dividing by exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownOperator is matched by errors from evaluating a tree that was
	// not built by this package.
	ErrUnknownOperator = errors.New("unknown operator")
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Col is the position of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, or empty if a close bracket has no match.
	Left string
	// Right is the closing bracket, or empty if an open bracket has no match.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// OperandError is an error indicating an operator without enough operands or
// an operand without an operator. It implements InputError.
type OperandError struct {
	// Col is the position of the offending token, or 0 if the tree was built
	// from a postfix stream without positions.
	Col int
	// Token is the operator missing an operand or the operand left over.
	Token string
	// Extra is true when Token is an operand that no operator consumed.
	Extra bool
}

func (err *OperandError) Error() string {
	if err.Extra {
		return errpos(err.Col, "operand "+strconv.Quote(err.Token)+" has no operator")
	}
	return errpos(err.Col, "operator "+strconv.Quote(err.Token)+" is missing an operand")
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// EmptyExpressionError is an error indicating input with no tokens.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)

// NameError is an error from evaluating a variable that was not substituted.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

func (err *NameError) Is(target error) bool {
	return target == ErrVariableNotFound
}

// DivisionError is an error from a division whose divisor is zero.
type DivisionError struct {
	// Dividend is the value that was to be divided.
	Dividend float64
}

func (err *DivisionError) Error() string {
	return "division by zero: " + strconv.FormatFloat(err.Dividend, 'g', -1, 64) + "/0"
}

func (err *DivisionError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// OperatorError is an error from evaluating a node that is neither a leaf nor
// a well-formed operator node.
type OperatorError struct {
	// Operator is the value of the node.
	Operator string
}

func (err *OperatorError) Error() string {
	return "unknown operator " + strconv.Quote(err.Operator)
}

func (err *OperatorError) Is(target error) bool {
	return target == ErrUnknownOperator
}
