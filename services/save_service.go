package services

import (
	"context"
	"fmt"

	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/repository"
)

// SaveService, kaydedilen tarifler (bookmark).
type SaveService interface {
	// Save, tarifi kullanıcının kayıtlılarına ekler. İdempotenttir.
	Save(ctx context.Context, userID, recipeID int64) (*models.SaveStatus, error)

	// Unsave, tarifi kayıtlılardan çıkarır. İdempotenttir.
	Unsave(ctx context.Context, userID, recipeID int64) (*models.SaveStatus, error)

	// Status, kullanıcının tarifi kaydedip kaydetmediğini döner.
	Status(ctx context.Context, userID, recipeID int64) (*models.SaveStatus, error)

	// ListSaved, kullanıcının kayıtlı tariflerini kayıt sırasına göre
	// (en yeni önce) sayfalı döner.
	ListSaved(ctx context.Context, userID int64, limit, offset int) (*models.RecipesPage, error)
}

type saveService struct {
	saves   repository.SaveRepository
	recipes repository.RecipeRepository
}

// NewSaveService, constructor.
func NewSaveService(saves repository.SaveRepository, recipes repository.RecipeRepository) SaveService {
	return &saveService{saves: saves, recipes: recipes}
}

func (s *saveService) Save(ctx context.Context, userID, recipeID int64) (*models.SaveStatus, error) {
	if err := s.ensureRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	if err := s.saves.Add(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	return s.status(ctx, userID, recipeID)
}

func (s *saveService) Unsave(ctx context.Context, userID, recipeID int64) (*models.SaveStatus, error) {
	if err := s.ensureRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	if err := s.saves.Remove(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	return s.status(ctx, userID, recipeID)
}

func (s *saveService) Status(ctx context.Context, userID, recipeID int64) (*models.SaveStatus, error) {
	if err := s.ensureRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.status(ctx, userID, recipeID)
}

func (s *saveService) ListSaved(ctx context.Context, userID int64, limit, offset int) (*models.RecipesPage, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	recipes, total, err := s.recipes.ListSavedByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return &models.RecipesPage{
		Items:  recipes,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *saveService) ensureRecipe(ctx context.Context, recipeID int64) error {
	exists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: recipe not found", pkg.ErrNotFound)
	}
	return nil
}

func (s *saveService) status(ctx context.Context, userID, recipeID int64) (*models.SaveStatus, error) {
	saved, err := s.saves.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	return &models.SaveStatus{RecipeID: recipeID, Saved: saved}, nil
}
