package repository

import "context"

// SaveRepository, kaydedilen tarifler (bookmark) persistence katmanı.
// Beğeniler gibi idempotent çalışır.
type SaveRepository interface {
	// Add, tarifi kullanıcının kayıtlılarına ekler. Zaten varsa sessizce geçer.
	Add(ctx context.Context, userID, recipeID int64) error

	// Remove, tarifi kayıtlılardan çıkarır. Yoksa sessizce geçer.
	Remove(ctx context.Context, userID, recipeID int64) error

	// Exists, kullanıcının tarifi kaydedip kaydetmediğini döner.
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}
