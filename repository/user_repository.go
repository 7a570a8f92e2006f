// Package repository, veritabanı erişim katmanını tanımlar.
//
// Repository Pattern: veritabanı işlemlerini (CRUD) soyutlayan katman.
// Service katmanı doğrudan SQL yazmaz — repository interface'i üzerinden çalışır.
//
// Neden interface?
// 1. Test: Mock repository yazarak DB olmadan test edebilirsin
// 2. Esneklik: SQLite'tan PostgreSQL'e geçiş sadece yeni implementasyon demek
// 3. Dependency Inversion: Service, concrete struct'a değil interface'e bağımlı
package repository

import (
	"context"

	"github.com/akinalp/tarif/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// GetByLogin, username veya email ile kullanıcı arar.
	// Login formundaki tek alan her ikisini de kabul eder.
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	// UsernameTaken / EmailTaken, profil güncellemesindeki uniqueness
	// kontrolleri için — excludeID, kullanıcının kendi kaydını hariç tutar.
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	// List, admin panel için sayfalı kullanıcı listesi döner: (items, total).
	List(ctx context.Context, filter *models.UserListFilter) ([]models.User, int, error)
	// Update, username/email/password_hash/bio/avatar_url alanlarını yazar.
	Update(ctx context.Context, user *models.User) error
	UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error
	// Delete, kullanıcıyı siler. FK cascade ile tarifleri, beğenileri ve
	// kayıtları da silinir. Dışarıdaki access token'lar geçerli kalır —
	// auth middleware'deki DB lookup'ı onları 401'e düşürür.
	Delete(ctx context.Context, id int64) error
}
