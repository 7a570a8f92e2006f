package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/tarif/database"
	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
)

// sqliteTagRepo, TagRepository interface'inin SQLite implementasyonu.
type sqliteTagRepo struct {
	db database.TxQuerier
}

// NewSQLiteTagRepo, constructor.
func NewSQLiteTagRepo(db database.TxQuerier) TagRepository {
	return &sqliteTagRepo{db: db}
}

func (r *sqliteTagRepo) Create(ctx context.Context, tag *models.Tag) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tags (name) VALUES (?) RETURNING id`,
		tag.Name,
	).Scan(&tag.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: tag name already exists", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

func (r *sqliteTagRepo) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	tag := &models.Tag{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM tags WHERE id = ?`, id,
	).Scan(&tag.ID, &tag.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: tag not found", pkg.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}

	return tag, nil
}

func (r *sqliteTagRepo) List(ctx context.Context) ([]models.Tag, error) {
	return r.queryTags(ctx, `SELECT id, name FROM tags ORDER BY name ASC`)
}

func (r *sqliteTagRepo) ListByRecipe(ctx context.Context, recipeID int64) ([]models.Tag, error) {
	query := `
		SELECT t.id, t.name FROM tags t
		JOIN recipe_tags rt ON rt.tag_id = t.id
		WHERE rt.recipe_id = ?
		ORDER BY t.name ASC`
	return r.queryTags(ctx, query, recipeID)
}

func (r *sqliteTagRepo) queryTags(ctx context.Context, query string, args ...any) ([]models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}

func (r *sqliteTagRepo) Update(ctx context.Context, tag *models.Tag) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tags SET name = ? WHERE id = ?`, tag.Name, tag.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: tag name already exists", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to update tag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: tag not found", pkg.ErrNotFound)
	}

	return nil
}

func (r *sqliteTagRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: tag not found", pkg.ErrNotFound)
	}

	return nil
}
