package repository

import "context"

// LikeRepository, beğeni persistence katmanı.
// Tüm operasyonlar idempotent: tekrar beğenmek veya olmayan beğeniyi
// kaldırmak hata üretmez.
type LikeRepository interface {
	// Add, beğeni ekler. Zaten varsa sessizce geçer.
	Add(ctx context.Context, userID, recipeID int64) error

	// Remove, beğeniyi kaldırır. Yoksa sessizce geçer.
	Remove(ctx context.Context, userID, recipeID int64) error

	// Exists, kullanıcının tarifi beğenip beğenmediğini döner.
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)

	// Count, tarifin toplam beğeni sayısını döner.
	Count(ctx context.Context, recipeID int64) (int64, error)
}
