package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akinalp/tarif/pkg"
)

// Recipe, bir yemek tarifini temsil eder.
//
// Ingredients ve Steps veritabanında JSON array olarak TEXT kolonunda saklanır
// (SQLite'ta native JSON tipi yoktur) — marshal/unmarshal repository'de yapılır,
// modelin kendisi düz []string taşır.
type Recipe struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	CreatedByID int64     `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Listeleme/detay sorgularında subquery ile doldurulur.
	LikesCount int `json:"likes_count"`
	SavesCount int `json:"saves_count"`

	// Sadece detay görünümünde doldurulur.
	Tags []Tag `json:"tags,omitempty"`
}

// CreateRecipeRequest, tarif oluştururken gelen veri.
// TagIDs opsiyoneldir — verilirse tarif ve etiket bağlantıları
// tek transaction içinde oluşturulur.
type CreateRecipeRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	TagIDs      []int64  `json:"tag_ids"`
}

// Validate, CreateRecipeRequest'i doğrular.
func (r *CreateRecipeRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	titleLen := utf8.RuneCountInString(r.Title)
	if titleLen < 1 || titleLen > 200 {
		return fmt.Errorf("%w: title must be between 1 and 200 characters", pkg.ErrBadRequest)
	}

	// nil yerine boş slice — JSON'da null değil [] yazılsın.
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}

	return nil
}

// UpdateRecipeRequest, tarif güncellemesi için. nil alan = değiştirme.
type UpdateRecipeRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Ingredients *[]string `json:"ingredients"`
	Steps       *[]string `json:"steps"`
}

// Validate, set edilmiş alanları doğrular.
func (r *UpdateRecipeRequest) Validate() error {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		titleLen := utf8.RuneCountInString(trimmed)
		if titleLen < 1 || titleLen > 200 {
			return fmt.Errorf("%w: title must be between 1 and 200 characters", pkg.ErrBadRequest)
		}
		*r.Title = trimmed
	}
	return nil
}

// RecipeListFilter, tarif listeleme parametreleri.
// Query, title ve description üzerinde substring araması yapar.
type RecipeListFilter struct {
	Query         string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	SortBy        string // id | title | created_at
	SortDir       string // asc | desc
	Limit         int
	Offset        int
}

// Normalize, filter'ı güvenli varsayılanlara çeker (bkz. UserListFilter.Normalize).
func (f *RecipeListFilter) Normalize() {
	switch f.SortBy {
	case "id", "title", "created_at":
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

// RecipesPage, sayfalı tarif listesi yanıtı.
type RecipesPage struct {
	Items  []Recipe `json:"items"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}
