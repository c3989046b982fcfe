// Package service stores equations and evaluates them against variable
// bindings.
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/zephyrtronium/equations"
	"github.com/zephyrtronium/equations/internal/store"
)

// ErrNotFound is returned for an equation id that was never stored.
var ErrNotFound = store.ErrNotFound

// EquationResponse describes a stored equation.
type EquationResponse struct {
	EquationID int64  `json:"equationId"`
	Equation   string `json:"equation"`
}

// EvaluationResponse is the result of evaluating a stored equation.
type EvaluationResponse struct {
	EquationID int64              `json:"equationId"`
	Equation   string             `json:"equation"`
	Variables  equations.Bindings `json:"variables"`
	Result     float64            `json:"result"`
}

// Service parses, stores, and evaluates equations.
type Service struct {
	store store.Store
}

// New creates a service over s.
func New(s store.Store) *Service {
	return &Service{store: s}
}

// Store parses text and saves the resulting tree. Blank text is an invalid
// expression. Parse failures are returned unwrapped.
func (s *Service) Store(ctx context.Context, text string) (EquationResponse, error) {
	tree, err := equations.Parse(text)
	if err != nil {
		return EquationResponse{}, err
	}
	eq, err := s.store.Add(ctx, tree)
	if err != nil {
		return EquationResponse{}, fmt.Errorf("couldn't store %q: %w", text, err)
	}
	r := response(eq)
	log.Printf("stored equation %d: %s", r.EquationID, r.Equation)
	return r, nil
}

// List returns every stored equation in increasing id order.
func (s *Service) List(ctx context.Context) ([]EquationResponse, error) {
	eqs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't list equations: %w", err)
	}
	r := make([]EquationResponse, len(eqs))
	for i, eq := range eqs {
		r[i] = response(eq)
	}
	return r, nil
}

// Evaluate substitutes vars into the equation with the given id and computes
// its value. Variables with no binding cause an error matching
// equations.ErrVariableNotFound.
func (s *Service) Evaluate(ctx context.Context, id int64, vars equations.Bindings) (EvaluationResponse, error) {
	eq, err := s.store.Get(ctx, id)
	if err != nil {
		return EvaluationResponse{}, err
	}
	v, err := equations.Evaluate(equations.Substitute(eq.Tree, vars))
	if err != nil {
		return EvaluationResponse{}, err
	}
	if vars == nil {
		vars = equations.Bindings{}
	}
	r := EvaluationResponse{
		EquationID: eq.ID,
		Equation:   equations.Render(eq.Tree),
		Variables:  vars,
		Result:     v,
	}
	log.Printf("evaluated equation %d with %v: %g", r.EquationID, vars, v)
	return r, nil
}

// Missing lists the variables of the equation with the given id that vars
// does not bind.
func (s *Service) Missing(ctx context.Context, id int64, vars equations.Bindings) ([]string, error) {
	eq, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var r []string
	for _, name := range eq.Tree.Vars() {
		if _, ok := vars[name]; !ok {
			r = append(r, name)
		}
	}
	return r, nil
}

func response(eq store.Equation) EquationResponse {
	return EquationResponse{EquationID: eq.ID, Equation: equations.Render(eq.Tree)}
}
