package repository

import (
	"context"

	"github.com/akinalp/tarif/models"
)

// RecipeRepository, tarif veritabanı işlemleri için interface.
//
// GetByID ve List, likes_count/saves_count alanlarını subquery ile doldurur —
// ayrı COUNT sorguları yerine tek round-trip.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter *models.RecipeListFilter) ([]models.Recipe, int, error)
	// ListSavedByUser, kullanıcının kaydettiği tarifleri en son kaydedilen
	// önce olacak şekilde döner: (items, total).
	ListSavedByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Recipe, int, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id int64) error
	// AttachTag / DetachTag, recipe_tags bağlantı tablosunu yönetir.
	// AttachTag idempotent'tir (INSERT OR IGNORE); var olmayan tag FK hatası verir.
	AttachTag(ctx context.Context, recipeID, tagID int64) error
	DetachTag(ctx context.Context, recipeID, tagID int64) error
}
