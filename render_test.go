package equations_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/equations"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"leaf", "x", "x"},
		{"num", "2.5", "2.5"},
		{"implicit", "x*y+z", "xy+z"},
		{"paren-implicit", "(x+y)*z", "(x+y)z"},
		{"coef", "2*x", "2x"},
		{"var-coef", "x*2", "x*2"},
		{"nums", "2*3", "2*3"},
		{"coef-paren", "3*(x+y)", "3(x+y)"},
		{"var-paren", "x*(y+z)", "x(y+z)"},
		{"paren-num", "(x+y)*2", "(x+y)*2"},
		{"paren-paren", "(x+y)*(x-y)", "(x+y)(x-y)"},
		{"chain", "x*y*z", "xyz"},
		{"chain-paren", "2*(x+y)*z", "2(x+y)z"},
		{"mul-right", "x*(y*z)", "xyz"},
		{"poly", "2x^2 + 3x + 2", "2x^2+3x+2"},
		{"spaces", " x + y ", "x+y"},
		{"redundant", "((x))+((y))", "x+y"},
		{"sub-left", "(x-y)-z", "x-y-z"},
		{"sub-right", "x-(y-z)", "x-(y-z)"},
		{"sub-add", "x-(y+z)", "x-(y+z)"},
		{"add-sub", "x+(y-z)", "x+y-z"},
		{"div-left", "(x/y)/z", "x/y/z"},
		{"div-right", "x/(y/z)", "x/(y/z)"},
		{"div-mul", "x/(y*z)", "x/(yz)"},
		{"mul-div", "(x/y)*z", "x/yz"},
		{"pow-right", "x^y^z", "x^(y^z)"},
		{"pow-left", "(x^y)^z", "(x^y)^z"},
		{"pow-sum", "(x+1)^2", "(x+1)^2"},
		{"pow-exp", "2^(x+1)", "2^(x+1)"},
		{"prec", "x+y*z", "x+yz"},
		{"prec-paren", "(x+y)/z", "(x+y)/z"},
		{"decimal-coef", "1.5*x", "1.5x"},
		{"point-var", "5.*x", "5.*x"},
		{"var-point", "x*.5", "x*.5"},
		{"point-leaf", "5.x", "5.x"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := equations.Parse(c.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			if got := equations.Render(a); got != c.want {
				t.Errorf("rendering %q: want %q, got %q", c.src, c.want, got)
			}
			if got := a.String(); got != c.want {
				t.Errorf("String of %q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestRenderNil(t *testing.T) {
	if s := equations.Render(nil); s != "" {
		t.Errorf("rendering nil gave %q", s)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	srcs := []string{
		"2x+3y",
		"3(x+y)",
		"x*y+z",
		"(x+y)*z",
		"x-(y-z)",
		"x/(y/z)",
		"(x^y)^z",
		"x^y^z",
		"2^3^2",
		"10-3-2",
		"(x+1)(x-1)(y+2)",
		"x/(2y)",
		"x-y+z-(x+y)",
		"((x))/((y))/z",
		"2.5x^2-0.5x/y",
		"5.*x+y*.5",
	}
	bindings := []equations.Bindings{
		{"x": 2, "y": 3, "z": 4},
		{"x": 0.5, "y": -1.5, "z": 3},
		{"x": 7, "y": 0.25, "z": 1.5},
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			a, err := equations.Parse(src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", src, err)
			}
			text := equations.Render(a)
			b, err := equations.Parse(text)
			if err != nil {
				t.Fatalf("rendered %q as %q, which fails to parse: %v", src, text, err)
			}
			if again := equations.Render(b); again != text {
				t.Errorf("rendering is not stable: %q renders %q, then %q", src, text, again)
			}
			for _, vars := range bindings {
				want, err := equations.Evaluate(equations.Substitute(a, vars))
				if err != nil {
					t.Fatalf("evaluating %q: %v", src, err)
				}
				got, err := equations.Evaluate(equations.Substitute(b, vars))
				if err != nil {
					t.Fatalf("evaluating %q: %v", text, err)
				}
				if math.Abs(got-want) > 1e-12*math.Max(1, math.Abs(want)) {
					t.Errorf("%q and %q differ with %v: %g vs %g", src, text, vars, want, got)
				}
			}
		})
	}
}
