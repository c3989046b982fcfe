package store

import (
	"context"
	"sort"
	"sync"

	"github.com/zephyrtronium/equations"
)

// Memory is a Store held in process memory.
type Memory struct {
	mu   sync.RWMutex
	eqs  map[int64]*equations.Node
	next int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{eqs: make(map[int64]*equations.Node), next: 1}
}

func (m *Memory) Add(ctx context.Context, tree *equations.Node) (Equation, error) {
	if err := ctx.Err(); err != nil {
		return Equation{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.next
	m.next++
	m.eqs[id] = tree
	return Equation{ID: id, Tree: tree}, nil
}

func (m *Memory) Get(ctx context.Context, id int64) (Equation, error) {
	if err := ctx.Err(); err != nil {
		return Equation{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	tree, ok := m.eqs[id]
	if !ok {
		return Equation{}, ErrNotFound
	}
	return Equation{ID: id, Tree: tree}, nil
}

func (m *Memory) List(ctx context.Context) ([]Equation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	r := make([]Equation, 0, len(m.eqs))
	for id, tree := range m.eqs {
		r = append(r, Equation{ID: id, Tree: tree})
	}
	m.mu.RUnlock()
	sort.Slice(r, func(i, j int) bool { return r[i].ID < r[j].ID })
	return r, nil
}

func (m *Memory) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eqs = make(map[int64]*equations.Node)
	m.next = 1
	return nil
}

var _ Store = (*Memory)(nil)
