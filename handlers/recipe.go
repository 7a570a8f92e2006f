// Package handlers — RecipeHandler: tarif CRUD ve etiket bağlantı endpoint'leri.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/services"
)

// RecipeHandler, tarif endpoint'lerini yöneten struct.
type RecipeHandler struct {
	recipeService services.RecipeService
}

// NewRecipeHandler, constructor.
func NewRecipeHandler(recipeService services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// Create godoc
// POST /recipes
// Body: title + opsiyonel description/ingredients/steps/tag_ids.
// tag_ids verilmişse hepsi mevcut olmalı — biri yoksa tarif de oluşmaz.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req models.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	recipe, err := h.recipeService.Create(r.Context(), actor, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, recipe)
}

// Get godoc
// GET /recipes/{id}
// Auth gerektirmez.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	recipe, err := h.recipeService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, recipe)
}

// List godoc
// GET /recipes?q=&created_after=&created_before=&sort_by=&sort_dir=&limit=&offset=
// Auth gerektirmez.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	createdAfter, err := queryTime(r, "created_after")
	if err != nil {
		pkg.Error(w, err)
		return
	}
	createdBefore, err := queryTime(r, "created_before")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	filter := &models.RecipeListFilter{
		Query:         r.URL.Query().Get("q"),
		CreatedAfter:  createdAfter,
		CreatedBefore: createdBefore,
		SortBy:        r.URL.Query().Get("sort_by"),
		SortDir:       r.URL.Query().Get("sort_dir"),
		Limit:         queryInt(r, "limit", 20),
		Offset:        queryInt(r, "offset", 0),
	}
	filter.Normalize()

	page, err := h.recipeService.List(r.Context(), filter)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, page)
}

// Update godoc
// PATCH /recipes/{id}
// Sahip veya admin.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var req models.UpdateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	recipe, err := h.recipeService.Update(r.Context(), actor, id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, recipe)
}

// Delete godoc
// DELETE /recipes/{id}
// Sahip veya admin.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.recipeService.Delete(r.Context(), actor, id); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.NoContent(w)
}

// AttachTag godoc
// POST /recipes/{id}/tags/{tagId}
// Sahip veya admin. İdempotent — zaten bağlıysa yine 200.
func (h *RecipeHandler) AttachTag(w http.ResponseWriter, r *http.Request) {
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
	tagID, err := pathID(r, "tagId")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	recipe, err := h.recipeService.AttachTag(r.Context(), actor, recipeID, tagID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, recipe)
}

// DetachTag godoc
// DELETE /recipes/{id}/tags/{tagId}
// Sahip veya admin. İdempotent — bağlı değilse yine 200.
func (h *RecipeHandler) DetachTag(w http.ResponseWriter, r *http.Request) {
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
	tagID, err := pathID(r, "tagId")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	recipe, err := h.recipeService.DetachTag(r.Context(), actor, recipeID, tagID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, recipe)
}
