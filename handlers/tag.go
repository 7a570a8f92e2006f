// Package handlers — TagHandler: etiket kataloğu endpoint'leri.
// Okumalar herkese açık; create/update/delete admin middleware ile korunur.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/services"
)

// TagHandler, etiket endpoint'lerini yöneten struct.
type TagHandler struct {
	tagService services.TagService
}

// NewTagHandler, constructor.
func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List godoc
// GET /tags
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, tags)
}

// Get godoc
// GET /tags/{id}
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	tag, err := h.tagService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, tag)
}

// Create godoc
// POST /tags
// Admin middleware gerektirir.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tag, err := h.tagService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, tag)
}

// Update godoc
// PATCH /tags/{id}
// Admin middleware gerektirir.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var req models.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tag, err := h.tagService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, tag)
}

// Delete godoc
// DELETE /tags/{id}
// Admin middleware gerektirir. CASCADE ile tarif bağlantıları da silinir.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.tagService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.NoContent(w)
}
