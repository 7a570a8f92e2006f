// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model, veritabanındaki bir tablonun Go karşılığıdır; aynı zamanda API'den
// gelen/giden verilerin şeklini de belirler. `json:"..."` tag'leri
// serialize/deserialize davranışını kontrol eder.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akinalp/tarif/pkg"
)

// emailRegex, basit email format kontrolü.
// RFC'nin tamamını kapsamaya çalışmayız — "bir şey@bir şey.bir şey" yeterli,
// gerisi zaten doğrulama mailine kalır (ki bu sistemde yok).
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User, bir kullanıcıyı temsil eder.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Bio          *string   `json:"bio"` // *string = nullable
	AvatarURL    *string   `json:"avatar_url"`
	PasswordHash string    `json:"-"` // json:"-" → API response'a DAHİL ETME
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicProfile, bir kullanıcının herkese açık görünümü.
// Email ve admin bayrağı dahil edilmez — bunlar sadece kullanıcının
// kendi profilinde (/users/me) görünür.
type PublicProfile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Public, kullanıcının herkese açık görünümünü döner.
func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		ID:        u.ID,
		Username:  u.Username,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

// CreateUserRequest, kayıt olurken gelen veri.
// PasswordHash yerine Password alırız — hash'leme service katmanında yapılır.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, CreateUserRequest'i doğrular ve normalize eder.
// Kurallar:
//   - Username: 3-50 karakter, alfanumerik + alt çizgi
//   - Email: geçerli format; küçük harfe normalize edilir (case-insensitive uniqueness)
//   - Password: minimum 6 karakter
func (r *CreateUserRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	usernameLen := utf8.RuneCountInString(r.Username)
	if usernameLen < 3 || usernameLen > 50 {
		return fmt.Errorf("%w: username must be between 3 and 50 characters", pkg.ErrBadRequest)
	}
	for _, ch := range r.Username {
		if !isValidUsernameChar(ch) {
			return fmt.Errorf("%w: username can only contain letters, numbers, and underscores", pkg.ErrBadRequest)
		}
	}

	r.Email = NormalizeEmail(r.Email)
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("%w: invalid email format", pkg.ErrBadRequest)
	}

	if utf8.RuneCountInString(r.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", pkg.ErrBadRequest)
	}

	return nil
}

// UpdateUserRequest, profil güncellemesi için. Tüm alanlar opsiyonel —
// nil olan alan "değiştirme" demektir. Pointer'lar sayesinde "boş string'e
// set et" ile "dokunma" ayırt edilebilir.
type UpdateUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// Validate, set edilmiş alanları doğrular ve normalize eder.
func (r *UpdateUserRequest) Validate() error {
	if r.Username != nil {
		trimmed := strings.TrimSpace(*r.Username)
		usernameLen := utf8.RuneCountInString(trimmed)
		if usernameLen < 3 || usernameLen > 50 {
			return fmt.Errorf("%w: username must be between 3 and 50 characters", pkg.ErrBadRequest)
		}
		for _, ch := range trimmed {
			if !isValidUsernameChar(ch) {
				return fmt.Errorf("%w: username can only contain letters, numbers, and underscores", pkg.ErrBadRequest)
			}
		}
		*r.Username = trimmed
	}

	if r.Email != nil {
		normalized := NormalizeEmail(*r.Email)
		if !emailRegex.MatchString(normalized) {
			return fmt.Errorf("%w: invalid email format", pkg.ErrBadRequest)
		}
		*r.Email = normalized
	}

	if r.Password != nil && utf8.RuneCountInString(*r.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", pkg.ErrBadRequest)
	}

	return nil
}

// UserListFilter, admin kullanıcı listeleme parametreleri.
type UserListFilter struct {
	Query         string // username/email prefix araması
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	SortBy        string // id | username | email | created_at
	SortDir       string // asc | desc
	Limit         int
	Offset        int
}

// Normalize, filter'ı güvenli varsayılanlara çeker.
// SortBy whitelist'i SQL injection'a karşı tek savunma hattıdır —
// sort kolonu placeholder ile parametrelenemez, string concat edilir.
func (f *UserListFilter) Normalize() {
	switch f.SortBy {
	case "id", "username", "email", "created_at":
	default:
		f.SortBy = "created_at"
	}
	if f.SortDir != "asc" {
		f.SortDir = "desc"
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// UsersPage, sayfalı kullanıcı listesi yanıtı.
type UsersPage struct {
	Items  []User `json:"items"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// NormalizeEmail, email'i karşılaştırılabilir biçime getirir (trim + lowercase).
// Uniqueness kontrolü her zaman normalize edilmiş değer üzerinden yapılır.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isValidUsernameChar, username'de izin verilen karakterleri kontrol eder.
func isValidUsernameChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_'
}
