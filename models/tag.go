package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akinalp/tarif/pkg"
)

// Tag, tariflere takılabilen bir etiketi temsil eder.
// Etiketler global bir vocabulary'dir ve sadece admin tarafından yönetilir —
// serbest etiketleme zamanla "Vegan", "vegan", "VEGAN " çöplüğüne dönüşür.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TagRequest, etiket oluşturma/güncelleme isteği.
type TagRequest struct {
	Name string `json:"name"`
}

// Validate, etiket adını doğrular ve normalize eder.
func (r *TagRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	nameLen := utf8.RuneCountInString(r.Name)
	if nameLen < 1 || nameLen > 50 {
		return fmt.Errorf("%w: tag name must be between 1 and 50 characters", pkg.ErrBadRequest)
	}
	return nil
}
