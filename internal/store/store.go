// Package store keeps parsed equations under sequential ids.
package store

import (
	"context"
	"errors"

	"github.com/zephyrtronium/equations"
)

// ErrNotFound is returned when no equation has the requested id.
var ErrNotFound = errors.New("equation not found")

// Equation is a stored expression tree.
type Equation struct {
	// ID identifies the equation. IDs start at 1 and increase by one for
	// each equation added.
	ID int64
	// Tree is the parsed expression. Callers must not modify it.
	Tree *equations.Node
}

// Store holds equations. Implementations are safe for concurrent use.
type Store interface {
	// Add stores a tree under the next id.
	Add(ctx context.Context, tree *equations.Node) (Equation, error)
	// Get retrieves the equation with the given id. If there is none, the
	// error is ErrNotFound.
	Get(ctx context.Context, id int64) (Equation, error)
	// List returns all equations in increasing id order.
	List(ctx context.Context) ([]Equation, error)
	// Clear removes all equations and restarts ids at 1.
	Clear(ctx context.Context) error
}
