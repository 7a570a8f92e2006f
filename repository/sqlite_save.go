package repository

import (
	"context"
	"fmt"

	"github.com/akinalp/tarif/database"
)

// sqliteSaveRepo, SaveRepository interface'inin SQLite implementasyonu.
type sqliteSaveRepo struct {
	db database.TxQuerier
}

// NewSQLiteSaveRepo, constructor.
func NewSQLiteSaveRepo(db database.TxQuerier) SaveRepository {
	return &sqliteSaveRepo{db: db}
}

func (r *sqliteSaveRepo) Add(ctx context.Context, userID, recipeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO saved_recipes (user_id, recipe_id) VALUES (?, ?)`,
		userID, recipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

func (r *sqliteSaveRepo) Remove(ctx context.Context, userID, recipeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_recipes WHERE user_id = ? AND recipe_id = ?`,
		userID, recipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to unsave recipe: %w", err)
	}
	return nil
}

func (r *sqliteSaveRepo) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_recipes WHERE user_id = ? AND recipe_id = ?)`,
		userID, recipeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check save existence: %w", err)
	}
	return exists, nil
}
