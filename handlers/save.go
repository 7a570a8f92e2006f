// Package handlers — SaveHandler: kaydedilen tarif (bookmark) endpoint'leri.
package handlers

import (
	"net/http"

	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/services"
)

// SaveHandler, kayıt endpoint'lerini yöneten struct.
type SaveHandler struct {
	saveService services.SaveService
}

// NewSaveHandler, constructor.
func NewSaveHandler(saveService services.SaveService) *SaveHandler {
	return &SaveHandler{saveService: saveService}
}

// Save godoc
// POST /recipes/{id}/save
// İdempotent.
func (h *SaveHandler) Save(w http.ResponseWriter, r *http.Request) {
	actor, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	recipeID, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	status, err := h.saveService.Save(r.Context(), actor.ID, recipeID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, status)
}

// Unsave godoc
// DELETE /recipes/{id}/save
// İdempotent.
func (h *SaveHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	actor, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	recipeID, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	status, err := h.saveService.Unsave(r.Context(), actor.ID, recipeID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, status)
}

// ListMine godoc
// GET /recipes/me/saves?limit=&offset=
// Kullanıcının kayıtlı tarifleri, en son kaydedilen önce.
func (h *SaveHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	page, err := h.saveService.ListSaved(r.Context(), actor.ID,
		queryInt(r, "limit", 20), queryInt(r, "offset", 0))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, page)
}

// Status godoc
// GET /recipes/{id}/saves/me
// Kullanıcının bu tarifi kaydedip kaydetmediğini döner.
func (h *SaveHandler) Status(w http.ResponseWriter, r *http.Request) {
	actor, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	recipeID, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	status, err := h.saveService.Status(r.Context(), actor.ID, recipeID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, status)
}
