package equations

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenOperand is a number or variable name.
	tokenOperand
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenOperand:
		return "Operand"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// cols maps rune indices of src to columns of the text the user wrote, if
	// src was preprocessed. If cols is nil, columns are rune indices.
	cols []int
	rune int
	eof  bool
}

func lex(src io.RuneScanner, cols []int) *lexer {
	return &lexer{
		src:  src,
		cols: cols,
		rune: 1,
	}
}

// col translates a rune position in the lexer's input to a column.
func (l *lexer) col(pos int) int {
	if pos-1 < len(l.cols) {
		return l.cols[pos-1]
	}
	if len(l.cols) > 0 {
		return l.cols[len(l.cols)-1] + pos - len(l.cols)
	}
	return pos
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent times, the result is
// an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	pos := l.rune
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return lexToken{kind: tokenEOF, pos: l.col(pos)}, nil
			}
			return lexToken{pos: l.col(pos)}, err
		}
		switch {
		case unicode.IsSpace(r):
			pos++
			continue
		case isOperandRune(r):
			l.unreadRune()
			if err := l.scanOperand(pos); err != nil {
				return lexToken{pos: l.col(pos)}, err
			}
			return lexToken{text: l.buf.String(), kind: tokenOperand, pos: l.col(pos)}, nil
		case r == '(':
			return lexToken{text: "(", kind: tokenOpen, pos: l.col(pos)}, nil
		case r == ')':
			return lexToken{text: ")", kind: tokenClose, pos: l.col(pos)}, nil
		case strings.ContainsRune(Operators, r):
			return lexToken{text: string(r), kind: tokenOp, pos: l.col(pos)}, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return lexToken{pos: l.col(pos)}, l.error(pos)
		}
	}
}

// scanOperand scans a maximal run of letters, digits, and at most one decimal
// point.
func (l *lexer) scanOperand(pos int) error {
	var dot, alnum bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if !isOperandRune(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		if r == '.' {
			if dot {
				return l.error(pos)
			}
			dot = true
			continue
		}
		alnum = true
	}
	if !alnum {
		// A lone decimal point.
		return l.error(pos)
	}
	return nil
}

func (l *lexer) error(pos int) error {
	return &LexError{
		Text: l.buf.String(),
		Col:  l.col(pos),
	}
}

func isOperandRune(r rune) bool {
	return r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Preprocess makes implicit multiplications explicit by inserting * between
// adjacent runes that would otherwise run together: a digit or letter followed
// by a letter or open parenthesis, a letter followed by a digit, and a close
// parenthesis followed by a digit, letter, or open parenthesis. Whitespace
// between two runes suppresses the insertion.
//
// Preprocess is not idempotent in general, so it must be applied to a given
// text exactly once. Parse calls it.
func Preprocess(text string) string {
	s, _ := preprocess(text)
	return s
}

// preprocess is Preprocess, additionally returning the column in text of each
// rune of the result. An inserted * has the column of the rune after it.
func preprocess(text string) (string, []int) {
	var b strings.Builder
	b.Grow(len(text))
	cols := make([]int, 0, len(text))
	rs := []rune(text)
	for i, cur := range rs {
		b.WriteRune(cur)
		cols = append(cols, i+1)
		if i+1 < len(rs) && implicitMul(cur, rs[i+1], true) {
			b.WriteByte('*')
			cols = append(cols, i+2)
		}
	}
	return b.String(), cols
}

// implicitMul reports whether a multiplication between two adjacent runes can
// be left implicit. digits indicates whether a digit may follow a letter or a
// close parenthesis; that is allowed when reading input but not when printing,
// where "x2" and ")2" would be surprising.
func implicitMul(cur, next rune, digits bool) bool {
	if unicode.IsSpace(cur) || unicode.IsSpace(next) {
		return false
	}
	curDigit, curLetter := unicode.IsDigit(cur), unicode.IsLetter(cur)
	nextDigit, nextLetter := unicode.IsDigit(next), unicode.IsLetter(next)
	switch {
	case (curDigit || curLetter || cur == ')') && (nextLetter || next == '('):
		return true
	case (curLetter || cur == ')') && nextDigit:
		return digits
	default:
		return false
	}
}
