package repository

import (
	"context"
	"fmt"

	"github.com/akinalp/tarif/database"
)

// sqliteLikeRepo, LikeRepository interface'inin SQLite implementasyonu.
type sqliteLikeRepo struct {
	db database.TxQuerier
}

// NewSQLiteLikeRepo, constructor.
func NewSQLiteLikeRepo(db database.TxQuerier) LikeRepository {
	return &sqliteLikeRepo{db: db}
}

func (r *sqliteLikeRepo) Add(ctx context.Context, userID, recipeID int64) error {
	// UNIQUE(user_id, recipe_id) + OR IGNORE = idempotent ekleme.
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO likes (user_id, recipe_id) VALUES (?, ?)`,
		userID, recipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (r *sqliteLikeRepo) Remove(ctx context.Context, userID, recipeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = ? AND recipe_id = ?`,
		userID, recipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (r *sqliteLikeRepo) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = ? AND recipe_id = ?)`,
		userID, recipeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return exists, nil
}

func (r *sqliteLikeRepo) Count(ctx context.Context, recipeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM likes WHERE recipe_id = ?`, recipeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
