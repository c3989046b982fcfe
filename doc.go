// Package equations parses, evaluates, and prints algebraic expressions over
// float64.
//
// The syntax is infix arithmetic with the operators + - * / and ^, where "a^b"
// is exponentiation and groups right to left ("2^3^2" is "2^(3^2)"). Adjacent
// terms with nothing between them multiply: "2x" is "2*x", "xy" is "x*y", and
// "3(x+y)" is "3*(x+y)". Whitespace separates terms without multiplying them,
// so "2 x" is an error. Because adjacent letters multiply, every variable name
// is a single letter.
//
// Parsing produces a tree of *Node. A tree is never modified after it is
// built: Substitute returns a fresh tree with variables replaced by numbers,
// so one parse can be evaluated for many sets of variables, and trees can be
// shared between goroutines.
//
// Render prints a tree back as infix, with parentheses only where they are
// needed and with multiplication written implicitly where the result reads
// back unambiguously.
package equations
