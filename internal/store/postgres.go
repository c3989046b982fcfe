package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zephyrtronium/equations"
)

const schema = `CREATE TABLE IF NOT EXISTS equations (
	id   BIGSERIAL PRIMARY KEY,
	tree JSONB NOT NULL
)`

// Postgres is a Store backed by a PostgreSQL table. Trees are kept as JSONB.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect creates a connection pool for url and makes sure the database
// responds.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database did not respond after connecting: %w", err)
	}
	return pool, nil
}

// NewPostgres creates a store using pool. Call Migrate before first use.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Migrate creates the equations table if it does not exist.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create equations table: %w", err)
	}
	return nil
}

func (p *Postgres) Add(ctx context.Context, tree *equations.Node) (Equation, error) {
	var id int64
	err := p.pool.QueryRow(ctx, `INSERT INTO equations (tree) VALUES ($1) RETURNING id`, tree).Scan(&id)
	if err != nil {
		return Equation{}, fmt.Errorf("failed to insert equation %v: %w", tree, err)
	}
	return Equation{ID: id, Tree: tree}, nil
}

func (p *Postgres) Get(ctx context.Context, id int64) (Equation, error) {
	var tree equations.Node
	err := p.pool.QueryRow(ctx, `SELECT tree FROM equations WHERE id = $1`, id).Scan(&tree)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Equation{}, ErrNotFound
		}
		return Equation{}, fmt.Errorf("failed to get equation %d: %w", id, err)
	}
	return Equation{ID: id, Tree: &tree}, nil
}

func (p *Postgres) List(ctx context.Context) ([]Equation, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, tree FROM equations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list equations: %w", err)
	}
	r, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Equation, error) {
		var eq Equation
		err := row.Scan(&eq.ID, &eq.Tree)
		return eq, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan equations: %w", err)
	}
	return r, nil
}

func (p *Postgres) Clear(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `TRUNCATE equations RESTART IDENTITY`); err != nil {
		return fmt.Errorf("failed to clear equations: %w", err)
	}
	return nil
}

var _ Store = (*Postgres)(nil)
