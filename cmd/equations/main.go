package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/equations"
)

func main() {
	log.SetFlags(0)
	if err := root().Execute(); err != nil {
		os.Exit(1)
	}
}

func root() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "equations",
		Short:        "Parse, render, and evaluate algebraic expressions",
		SilenceUsage: true,
	}
	cmd.AddCommand(evalCmd(), renderCmd(), postfixCmd(), serveCmd())
	return cmd
}

// source holds the flags shared by commands that read expressions.
type source struct {
	in    string
	lines bool
}

func (s *source) flags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.in, "in", "", "input file, - for stdin (default stdin if no args given)")
	cmd.Flags().BoolVarP(&s.lines, "lines", "n", false, "parse separate input lines as separate expressions")
}

// read collects the expressions from the input file followed by args.
func (s *source) read(stdin io.Reader, args []string) ([]string, error) {
	var r []string
	var f io.Reader
	switch {
	case s.in != "" && s.in != "-":
		in, err := os.Open(s.in)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	case s.in == "-", len(args) == 0:
		f = stdin
	}
	if f != nil {
		if s.lines {
			sc := bufio.NewScanner(f)
			for sc.Scan() {
				if strings.TrimSpace(sc.Text()) != "" {
					r = append(r, sc.Text())
				}
			}
			if err := sc.Err(); err != nil {
				return nil, err
			}
		} else {
			b, err := io.ReadAll(f)
			if err != nil {
				return nil, err
			}
			r = append(r, string(b))
		}
	}
	return append(r, args...), nil
}

func evalCmd() *cobra.Command {
	var (
		src   source
		verb  string
		given []string
		echo  bool
	)
	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			vars := make(equations.Bindings, len(given))
			for _, d := range given {
				nm, vl, ok := strings.Cut(d, "=")
				if !ok {
					return fmt.Errorf(`variable definitions must be "name=value", not %q`, d)
				}
				nm = strings.TrimSpace(nm)
				r, err := equations.Eval(vl, vars)
				if err != nil {
					return fmt.Errorf("setting %s: %w", nm, err)
				}
				vars[nm] = r
			}
			exprs, err := src.read(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			p := make([]*equations.Node, 0, len(exprs))
			for _, e := range exprs {
				a, err := equations.Parse(e)
				if err != nil {
					return err
				}
				p = append(p, a)
			}
			out := cmd.OutOrStdout()
			for _, a := range p {
				if echo {
					fmt.Fprintf(out, "%v : ", a)
				}
				r, err := equations.Evaluate(equations.Substitute(a, vars))
				if err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				fmt.Fprintf(out, verb+"\n", r)
			}
			return nil
		},
	}
	src.flags(cmd)
	cmd.Flags().StringVar(&verb, "fmt", "%g", "result formatting string")
	cmd.Flags().StringArrayVar(&given, "given", nil, "name=value variable definition (any number of times)")
	cmd.Flags().BoolVar(&echo, "echo", false, "print normalized expressions before results")
	return cmd
}

func renderCmd() *cobra.Command {
	var src source
	cmd := &cobra.Command{
		Use:   "render [expr...]",
		Short: "Print expressions in normalized form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, &src, args, func(e string) (string, error) {
				a, err := equations.Parse(e)
				if err != nil {
					return "", err
				}
				return equations.Render(a), nil
			})
		},
	}
	src.flags(cmd)
	return cmd
}

func postfixCmd() *cobra.Command {
	var src source
	cmd := &cobra.Command{
		Use:   "postfix [expr...]",
		Short: "Print expressions in postfix notation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, &src, args, func(e string) (string, error) {
				return equations.ToPostfix(equations.Preprocess(e))
			})
		},
	}
	src.flags(cmd)
	return cmd
}

// each prints f applied to every expression, stopping at the first error.
func each(cmd *cobra.Command, src *source, args []string, f func(string) (string, error)) error {
	exprs, err := src.read(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range exprs {
		s, err := f(e)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	}
	return nil
}
