package repository

import (
	"context"

	"github.com/akinalp/tarif/models"
)

// TagRepository, etiket persistence katmanı.
type TagRepository interface {
	// Create, yeni etiket oluşturur ve ID'yi doldurur.
	// Aynı isimde etiket varsa pkg.ErrAlreadyExists döner.
	Create(ctx context.Context, tag *models.Tag) error

	// GetByID, tek etiket döner. Bulunamazsa pkg.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Tag, error)

	// List, tüm etiketleri isim sırasıyla döner.
	List(ctx context.Context) ([]models.Tag, error)

	// ListByRecipe, bir tarife bağlı etiketleri döner.
	ListByRecipe(ctx context.Context, recipeID int64) ([]models.Tag, error)

	// Update, etiket ismini değiştirir.
	// Yeni isim başka etikette kullanılıyorsa pkg.ErrAlreadyExists döner.
	Update(ctx context.Context, tag *models.Tag) error

	// Delete, etiketi ve tarif bağlantılarını (CASCADE) siler.
	Delete(ctx context.Context, id int64) error
}
