package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/lastcamp/internal/game/forest"
)

// TreeRepository stores the forest layout and which trees were cut.
type TreeRepository struct {
	pool *pgxpool.Pool
}

// NewTreeRepository creates a new tree repository.
func NewTreeRepository(pool *pgxpool.Pool) *TreeRepository {
	return &TreeRepository{pool: pool}
}

// LoadLive loads all standing trees ordered by ID.
func (r *TreeRepository) LoadLive(ctx context.Context) ([]forest.Tree, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT tree_id, x, z, radius
		FROM trees
		WHERE cut_at IS NULL
		ORDER BY tree_id
	`)
	if err != nil {
		return nil, fmt.Errorf("loading live trees: %w", err)
	}
	defer rows.Close()

	trees := make([]forest.Tree, 0, 256)
	for rows.Next() {
		var t forest.Tree
		if err := rows.Scan(&t.ID, &t.X, &t.Z, &t.Radius); err != nil {
			return nil, fmt.Errorf("scanning tree row: %w", err)
		}
		trees = append(trees, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tree rows: %w", err)
	}
	return trees, nil
}

// InsertAll plants trees in one batch and returns them with database IDs.
// Input IDs are ignored.
func (r *TreeRepository) InsertAll(ctx context.Context, trees []forest.Tree) ([]forest.Tree, error) {
	if len(trees) == 0 {
		return nil, nil
	}

	batch := &pgx.Batch{}
	for _, t := range trees {
		batch.Queue(`INSERT INTO trees (x, z, radius) VALUES ($1, $2, $3) RETURNING tree_id`, t.X, t.Z, t.Radius)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction for tree insert: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	results := tx.SendBatch(ctx, batch)
	out := make([]forest.Tree, len(trees))
	for i, t := range trees {
		if err := results.QueryRow().Scan(&t.ID); err != nil {
			_ = results.Close()
			return nil, fmt.Errorf("inserting tree %d: %w", i, err)
		}
		out[i] = t
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("closing tree batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing tree insert: %w", err)
	}
	return out, nil
}

// MarkCut records that a tree was felled. Cutting twice keeps the first time.
func (r *TreeRepository) MarkCut(ctx context.Context, treeID int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE trees SET cut_at = now() WHERE tree_id = $1 AND cut_at IS NULL`,
		treeID,
	)
	if err != nil {
		return fmt.Errorf("marking tree %d cut: %w", treeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tree %d not found or already cut", treeID)
	}
	return nil
}

// CountLive returns the number of standing trees.
func (r *TreeRepository) CountLive(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM trees WHERE cut_at IS NULL`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting live trees: %w", err)
	}
	return n, nil
}
