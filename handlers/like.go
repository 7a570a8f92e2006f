// Package handlers — LikeHandler: tarif beğeni endpoint'leri.
package handlers

import (
	"net/http"

	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/services"
)

// LikeHandler, beğeni endpoint'lerini yöneten struct.
type LikeHandler struct {
	likeService services.LikeService
}

// NewLikeHandler, constructor.
func NewLikeHandler(likeService services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Like godoc
// POST /recipes/{id}/like
// İdempotent — tekrar beğenmek hata değildir.
func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
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

	status, err := h.likeService.Like(r.Context(), actor.ID, recipeID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, status)
}

// Unlike godoc
// DELETE /recipes/{id}/like
// İdempotent — olmayan beğeniyi kaldırmak hata değildir.
func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
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

	status, err := h.likeService.Unlike(r.Context(), actor.ID, recipeID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, status)
}

// Count godoc
// GET /recipes/{id}/likes/count
// Auth gerektirmez.
func (h *LikeHandler) Count(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	count, err := h.likeService.Count(r.Context(), recipeID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, count)
}

// Status godoc
// GET /recipes/{id}/likes/me
// Kullanıcının bu tarifi beğenip beğenmediğini döner.
func (h *LikeHandler) Status(w http.ResponseWriter, r *http.Request) {
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

	status, err := h.likeService.Status(r.Context(), actor.ID, recipeID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, status)
}
