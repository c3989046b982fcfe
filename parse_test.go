package equations

import (
	"errors"
	"testing"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two trees are equal.
func (n *Node) diff(m *Node) (*Node, *Node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil || n.Value != m.Value {
		return n, m
	}
	if d, e := n.Left.diff(m.Left); d != nil || e != nil {
		return d, e
	}
	return n.Right.diff(m.Right)
}

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		if b := binop(string(r)); b.prec == 0 {
			t.Errorf("no operator for %c", r)
		}
	}
}

func TestOnlyPowIsRightAssociative(t *testing.T) {
	for _, r := range Operators {
		if b := binop(string(r)); b.right != (r == '^') {
			t.Errorf("%c has right associativity %t", r, b.right)
		}
	}
}

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"var", "x", "x"},
		{"add", "a+b", "a b +"},
		{"sub-left", "a-b-c", "a b - c -"},
		{"div-left", "a/b/c", "a b / c /"},
		{"pow-right", "a^b^c", "a b c ^ ^"},
		{"prec", "a+b*c", "a b c * +"},
		{"prec-desc", "a^b*c+d", "a b ^ c * d +"},
		{"paren", "(a+b)*c", "a b + c *"},
		{"nested", "((a))", "a"},
		{"spaces", " a +\tb ", "a b +"},
		{"decimal", "2.5*x", "2.5 x *"},
		{"mixed", "a-b+c", "a b - c +"},
		{"mul-div", "a*b/c", "a b * c /"},
		{"pow-mul", "a*b^c^d", "a b c d ^ ^ *"},
		{"empty", "", ""},
		// Operand checks happen when building the tree.
		{"dangling", "a+", "a +"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ToPostfix(c.src)
			if err != nil {
				t.Fatalf("ToPostfix(%q) failed: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("ToPostfix(%q): want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(x)", "x"},
		{"multi", "(((x)))", "x"},

		{"add", "x+y", "((x)+(y))"},
		{"sub", "x-y", "((x)-(y))"},
		{"mul", "x*y", "((x)*(y))"},
		{"div", "x/y", "((x)/(y))"},
		{"pow", "x^y", "((x)^(y))"},
		{"terms", "xy", "x*y"},
		{"coef", "2x", "2*x"},
		{"parenterms", "x(y)", "x*y"},
		{"closeterms", "(x)y", "x*y"},
		{"closedigit", "(x)2", "x*2"},
		{"closeopen", "(x)(y)", "x*y"},

		{"add4", "w+x+y+z", "((w+x)+y)+z"},
		{"sub4", "w-x-y-z", "((w-x)-y)-z"},
		{"mul4", "w*x*y*z", "((w*x)*y)*z"},
		{"div4", "w/x/y/z", "((w/x)/y)/z"},
		{"pow4", "w^x^y^z", "w^(x^(y^z))"},
		{"terms4", "wxyz", "((w*x)*y)*z"},

		{"desc", "w^x*y+z", "((w^x)*y)+z"},
		{"asc", "w+x*y^z", "w+(x*(y^z))"},
		{"descasc", "w^x*y+z+a*b^c", "(((w^x)*y)+z)+(a*(b^c))"},
		{"ascdesc", "w+x*y^z^a*b+c", "(w+((x*(y^(z^a)))*b))+c"},
		{"powterms", "xy^z", "x*(y^z)"},
		{"powcoef", "2x^2", "2*(x^2)"},
		{"divterms", "x/2y", "(x/2)*y"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.a)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.a, err)
			}
			b, err := Parse(c.b)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.b, err)
			}
			d, e := a.diff(b)
			if d != nil || e != nil {
				t.Errorf("mismatched tree:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.a, a.Bracketed(), d, c.b, b.Bracketed(), e)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    *Node
	}{
		{
			name: "num",
			src:  "42",
			n:    &Node{Value: "42"},
		},
		{
			name: "decimal",
			src:  "0.25",
			n:    &Node{Value: "0.25"},
		},
		{
			name: "coef",
			src:  "3x",
			n: &Node{
				Value: "*",
				Left:  &Node{Value: "3"},
				Right: &Node{Value: "x"},
			},
		},
		{
			name: "sub",
			src:  "10-3-2",
			n: &Node{
				Value: "-",
				Left: &Node{
					Value: "-",
					Left:  &Node{Value: "10"},
					Right: &Node{Value: "3"},
				},
				Right: &Node{Value: "2"},
			},
		},
		{
			name: "pow",
			src:  "2^3^2",
			n: &Node{
				Value: "^",
				Left:  &Node{Value: "2"},
				Right: &Node{
					Value: "^",
					Left:  &Node{Value: "3"},
					Right: &Node{Value: "2"},
				},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := Parse(c.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			if d, e := n.diff(c.n); d != nil || e != nil {
				t.Errorf("%q parsed to %v, want %v (differs at %v vs %v)", c.src, n.Bracketed(), c.n.Bracketed(), d, e)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  interface{}
		pos  int
	}{
		{"empty", "", new(*EmptyExpressionError), 1},
		{"blank", "   ", new(*EmptyExpressionError), 4},
		{"parens", "()", new(*EmptyExpressionError), 3},
		{"dangling", "2*x +", new(*OperandError), 5},
		{"leading", "*x", new(*OperandError), 1},
		{"neg", "-x", new(*OperandError), 1},
		{"doubled", "x++y", new(*OperandError), 2},
		{"spaced", "2 x", new(*OperandError), 3},
		{"spaced-parens", "(a+b) (c+d)", new(*OperandError), 8},
		{"close", "x)", new(*BracketError), 2},
		{"close-first", ")x(", new(*BracketError), 1},
		{"open", "(x", new(*BracketError), 1},
		{"open-nested", "((x)", new(*BracketError), 1},
		{"symbol", "x%y", new(*LexError), 2},
		{"equals", "x=1", new(*LexError), 2},
		{"dots", "1.2.3", new(*LexError), 1},
		{"dot", "x+.", new(*LexError), 3},
		{"after-coef", "2x$", new(*LexError), 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := Parse(c.src)
			if err == nil {
				t.Fatalf("%q parsed to %v without error", c.src, n.Bracketed())
			}
			if !errors.Is(err, ErrInvalidExpression) {
				t.Errorf("%q gave %v, which is not ErrInvalidExpression", c.src, err)
			}
			if !errors.As(err, c.err) {
				t.Errorf("%q gave %#v, wanted %T", c.src, err, c.err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q gave %#v, which is not an InputError", c.src, err)
			}
			if ie.Pos() != c.pos {
				t.Errorf("%q gave error at %d, want %d: %v", c.src, ie.Pos(), c.pos, err)
			}
		})
	}
}

func TestBuildTree(t *testing.T) {
	cases := []struct {
		name    string
		postfix string
		want    string
	}{
		{"leaf", "x", "x"},
		{"add", "x y +", "(x + y)"},
		{"order", "a b c - -", "(a - [b - c])"},
		{"spaces", "  a\tb   * ", "(a * b)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := BuildTree(c.postfix)
			if err != nil {
				t.Fatalf("BuildTree(%q) failed: %v", c.postfix, err)
			}
			if got := n.Bracketed(); got != c.want {
				t.Errorf("BuildTree(%q): want %s, got %s", c.postfix, c.want, got)
			}
		})
	}
}

func TestBuildTreeErrors(t *testing.T) {
	cases := []struct {
		name    string
		postfix string
	}{
		{"empty", ""},
		{"op", "+"},
		{"one-operand", "x +"},
		{"extra", "x y"},
		{"extra-tree", "x y + z"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := BuildTree(c.postfix)
			if err == nil {
				t.Fatalf("BuildTree(%q) built %v without error", c.postfix, n.Bracketed())
			}
			if !errors.Is(err, ErrInvalidExpression) {
				t.Errorf("BuildTree(%q) gave %v, which is not ErrInvalidExpression", c.postfix, err)
			}
		})
	}
}

func TestParseDoesNotShareNodes(t *testing.T) {
	a, err := Parse("x+y")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("x+y")
	if err != nil {
		t.Fatal(err)
	}
	if a == b || a.Left == b.Left || a.Right == b.Right {
		t.Errorf("separate parses share nodes")
	}
}
