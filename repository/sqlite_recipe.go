package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/akinalp/tarif/database"
	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
)

// sqliteRecipeRepo, RecipeRepository interface'inin SQLite implementasyonu.
//
// ingredients ve steps JSON array olarak TEXT kolonunda saklanır —
// SQLite'ta native array/JSON tipi yoktur. Marshal/unmarshal burada yapılır,
// service ve üstü katmanlar düz []string görür.
type sqliteRecipeRepo struct {
	db database.TxQuerier
}

// NewSQLiteRecipeRepo, constructor.
// database.WithTx içinde *sql.Tx ile de çağrılabilir — tx-scoped repo.
func NewSQLiteRecipeRepo(db database.TxQuerier) RecipeRepository {
	return &sqliteRecipeRepo{db: db}
}

// recipeColumns, counts dahil tarif SELECT listesi.
// Subquery'ler her satır için beğeni/kaydetme sayısını döner.
const recipeColumns = `
	r.id, r.title, r.description, r.ingredients, r.steps, r.created_by_id, r.created_at,
	(SELECT COUNT(*) FROM likes l WHERE l.recipe_id = r.id) AS likes_count,
	(SELECT COUNT(*) FROM saved_recipes s WHERE s.recipe_id = r.id) AS saves_count`

func scanRecipe(row interface{ Scan(...any) error }, rec *models.Recipe) error {
	var ingredientsJSON, stepsJSON string
	if err := row.Scan(
		&rec.ID, &rec.Title, &rec.Description, &ingredientsJSON, &stepsJSON,
		&rec.CreatedByID, &rec.CreatedAt, &rec.LikesCount, &rec.SavesCount,
	); err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(ingredientsJSON), &rec.Ingredients); err != nil {
		return fmt.Errorf("failed to decode ingredients: %w", err)
	}
	if err := json.Unmarshal([]byte(stepsJSON), &rec.Steps); err != nil {
		return fmt.Errorf("failed to decode steps: %w", err)
	}

	return nil
}

func (r *sqliteRecipeRepo) Create(ctx context.Context, recipe *models.Recipe) error {
	ingredientsJSON, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode ingredients: %w", err)
	}
	stepsJSON, err := json.Marshal(recipe.Steps)
	if err != nil {
		return fmt.Errorf("failed to encode steps: %w", err)
	}

	query := `
		INSERT INTO recipes (title, description, ingredients, steps, created_by_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		recipe.Title, recipe.Description, string(ingredientsJSON), string(stepsJSON), recipe.CreatedByID,
	).Scan(&recipe.ID, &recipe.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	return nil
}

func (r *sqliteRecipeRepo) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	query := `SELECT` + recipeColumns + ` FROM recipes r WHERE r.id = ?`

	recipe := &models.Recipe{}
	err := scanRecipe(r.db.QueryRowContext(ctx, query, id), recipe)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: recipe not found", pkg.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe by id: %w", err)
	}

	return recipe, nil
}

func (r *sqliteRecipeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM recipes WHERE id = ?)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recipe existence: %w", err)
	}
	return exists, nil
}

func (r *sqliteRecipeRepo) List(ctx context.Context, filter *models.RecipeListFilter) ([]models.Recipe, int, error) {
	filter.Normalize()

	where := "1=1"
	args := []any{}

	if filter.Query != "" {
		// Substring araması — title ve description üzerinde.
		where += " AND (r.title LIKE ? OR r.description LIKE ?)"
		like := "%" + filter.Query + "%"
		args = append(args, like, like)
	}
	if filter.CreatedAfter != nil {
		where += " AND r.created_at >= ?"
		args = append(args, filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		where += " AND r.created_at <= ?"
		args = append(args, filter.CreatedBefore)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM recipes r WHERE " + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT%s FROM recipes r WHERE %s ORDER BY r.%s %s LIMIT ? OFFSET ?",
		recipeColumns, where, filter.SortBy, strings.ToUpper(filter.SortDir),
	)
	args = append(args, filter.Limit, filter.Offset)

	return r.queryRecipes(ctx, query, args, total)
}

func (r *sqliteRecipeRepo) ListSavedByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Recipe, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM saved_recipes WHERE user_id = ?`, userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count saved recipes: %w", err)
	}

	query := `SELECT` + recipeColumns + `
		FROM recipes r
		JOIN saved_recipes sr ON sr.recipe_id = r.id
		WHERE sr.user_id = ?
		ORDER BY sr.id DESC
		LIMIT ? OFFSET ?`

	return r.queryRecipes(ctx, query, []any{userID, limit, offset}, total)
}

// queryRecipes, çok satırlı tarif sorgularının ortak iterasyon kodu.
func (r *sqliteRecipeRepo) queryRecipes(ctx context.Context, query string, args []any, total int) ([]models.Recipe, int, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		var rec models.Recipe
		if err := scanRecipe(rows, &rec); err != nil {
			return nil, 0, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating recipe rows: %w", err)
	}

	return recipes, total, nil
}

func (r *sqliteRecipeRepo) Update(ctx context.Context, recipe *models.Recipe) error {
	ingredientsJSON, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode ingredients: %w", err)
	}
	stepsJSON, err := json.Marshal(recipe.Steps)
	if err != nil {
		return fmt.Errorf("failed to encode steps: %w", err)
	}

	query := `
		UPDATE recipes SET title = ?, description = ?, ingredients = ?, steps = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		recipe.Title, recipe.Description, string(ingredientsJSON), string(stepsJSON), recipe.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: recipe not found", pkg.ErrNotFound)
	}

	return nil
}

func (r *sqliteRecipeRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: recipe not found", pkg.ErrNotFound)
	}

	return nil
}

func (r *sqliteRecipeRepo) AttachTag(ctx context.Context, recipeID, tagID int64) error {
	// INSERT OR IGNORE: bağlantı zaten varsa sessizce geç (idempotent).
	// FOREIGN KEY hatası → tag veya recipe yok.
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)`,
		recipeID, tagID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return fmt.Errorf("%w: tag not found", pkg.ErrNotFound)
		}
		return fmt.Errorf("failed to attach tag: %w", err)
	}
	return nil
}

func (r *sqliteRecipeRepo) DetachTag(ctx context.Context, recipeID, tagID int64) error {
	// Olmayan bağlantıyı silmek hata değildir (idempotent).
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM recipe_tags WHERE recipe_id = ? AND tag_id = ?`,
		recipeID, tagID,
	)
	if err != nil {
		return fmt.Errorf("failed to detach tag: %w", err)
	}
	return nil
}
