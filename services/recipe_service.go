package services

import (
	"context"
	"database/sql"

	"github.com/akinalp/tarif/database"
	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg/authz"
	"github.com/akinalp/tarif/repository"
)

// RecipeService, tarif CRUD'u ve etiket bağlantıları.
// Yazma operasyonlarında sahiplik kuralı: sadece tarif sahibi veya admin.
type RecipeService interface {
	// Create, tarifi ve varsa başlangıç etiketlerini tek transaction'da oluşturur.
	Create(ctx context.Context, actor *models.User, req *models.CreateRecipeRequest) (*models.Recipe, error)

	// GetByID, tarifi etiketleri ve sayaçlarıyla döner.
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)

	// List, filtreli/sayfalı tarif listesi. Herkese açık.
	List(ctx context.Context, filter *models.RecipeListFilter) (*models.RecipesPage, error)

	// Update, kısmi güncelleme. Sahip veya admin.
	Update(ctx context.Context, actor *models.User, id int64, req *models.UpdateRecipeRequest) (*models.Recipe, error)

	// Delete, tarifi siler. Sahip veya admin.
	Delete(ctx context.Context, actor *models.User, id int64) error

	// AttachTag / DetachTag, tarif-etiket bağlantısını yönetir. Sahip veya admin.
	AttachTag(ctx context.Context, actor *models.User, recipeID, tagID int64) (*models.Recipe, error)
	DetachTag(ctx context.Context, actor *models.User, recipeID, tagID int64) (*models.Recipe, error)
}

type recipeService struct {
	// db, create-with-tags gibi çok adımlı yazmalar için transaction açmakta
	// kullanılır; tekil operasyonlar doğrudan repo üzerinden gider.
	db      *sql.DB
	recipes repository.RecipeRepository
	tags    repository.TagRepository
}

// NewRecipeService, constructor.
func NewRecipeService(db *sql.DB, recipes repository.RecipeRepository, tags repository.TagRepository) RecipeService {
	return &recipeService{db: db, recipes: recipes, tags: tags}
}

func (s *recipeService) Create(ctx context.Context, actor *models.User, req *models.CreateRecipeRequest) (*models.Recipe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		CreatedByID: actor.ID,
	}

	// Tarif + etiket bağlantıları atomik: etiketlerden biri yoksa
	// tarif de oluşmaz.
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txRecipes := repository.NewSQLiteRecipeRepo(tx)
		if err := txRecipes.Create(ctx, recipe); err != nil {
			return err
		}
		for _, tagID := range req.TagIDs {
			if err := txRecipes.AttachTag(ctx, recipe.ID, tagID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadWithTags(ctx, recipe.ID)
}

func (s *recipeService) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	return s.loadWithTags(ctx, id)
}

func (s *recipeService) List(ctx context.Context, filter *models.RecipeListFilter) (*models.RecipesPage, error) {
	recipes, total, err := s.recipes.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return &models.RecipesPage{
		Items:  recipes,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (s *recipeService) Update(ctx context.Context, actor *models.User, id int64, req *models.UpdateRecipeRequest) (*models.Recipe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.OwnerOrAdmin(actor, recipe.CreatedByID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = req.Description
	}
	if req.Ingredients != nil {
		recipe.Ingredients = *req.Ingredients
	}
	if req.Steps != nil {
		recipe.Steps = *req.Steps
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, err
	}

	return s.loadWithTags(ctx, id)
}

func (s *recipeService) Delete(ctx context.Context, actor *models.User, id int64) error {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.OwnerOrAdmin(actor, recipe.CreatedByID); err != nil {
		return err
	}
	return s.recipes.Delete(ctx, id)
}

func (s *recipeService) AttachTag(ctx context.Context, actor *models.User, recipeID, tagID int64) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := authz.OwnerOrAdmin(actor, recipe.CreatedByID); err != nil {
		return nil, err
	}

	// Etiket var mı? FK hatasından önce net bir 404 üretelim.
	if _, err := s.tags.GetByID(ctx, tagID); err != nil {
		return nil, err
	}

	if err := s.recipes.AttachTag(ctx, recipeID, tagID); err != nil {
		return nil, err
	}

	return s.loadWithTags(ctx, recipeID)
}

func (s *recipeService) DetachTag(ctx context.Context, actor *models.User, recipeID, tagID int64) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := authz.OwnerOrAdmin(actor, recipe.CreatedByID); err != nil {
		return nil, err
	}

	if err := s.recipes.DetachTag(ctx, recipeID, tagID); err != nil {
		return nil, err
	}

	return s.loadWithTags(ctx, recipeID)
}

// loadWithTags, tarifi etiketleriyle birlikte döner.
func (s *recipeService) loadWithTags(ctx context.Context, id int64) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tags, err := s.tags.ListByRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe.Tags = tags
	return recipe, nil
}
