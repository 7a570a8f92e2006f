// Package handlers — UserHandler: profil ve admin kullanıcı yönetimi endpoint'leri.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/services"
)

// UserHandler, kullanıcı endpoint'lerini yöneten struct.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler, constructor.
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe godoc
// GET /users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}

// UpdateMe godoc
// PATCH /users/me
// Body: kısmi güncelleme — sadece gönderilen alanlar değişir.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	h.update(w, r, user, user.ID)
}

// DeleteMe godoc
// DELETE /users/me
// Hesap kalıcı olarak silinir; tarifler, beğeniler ve kayıtlar da gider.
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	if err := h.userService.Delete(r.Context(), user, user.ID); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.NoContent(w)
}

// GetPublicProfile godoc
// GET /users/{id}/public
// Auth gerektirmez — email gibi özel alanlar dönmez.
func (h *UserHandler) GetPublicProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pkg.Error(w, err)
		return
	}

	profile, err := h.userService.GetPublicProfile(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, profile)
}

// List godoc
// GET /users?q=&created_after=&created_before=&sort_by=&sort_dir=&limit=&offset=
// Admin middleware gerektirir.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
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

	filter := &models.UserListFilter{
		Query:         r.URL.Query().Get("q"),
		CreatedAfter:  createdAfter,
		CreatedBefore: createdBefore,
		SortBy:        r.URL.Query().Get("sort_by"),
		SortDir:       r.URL.Query().Get("sort_dir"),
		Limit:         queryInt(r, "limit", 20),
		Offset:        queryInt(r, "offset", 0),
	}
	filter.Normalize()

	page, err := h.userService.List(r.Context(), filter)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, page)
}

// Update godoc
// PATCH /users/{id}
// Admin middleware gerektirir.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	h.update(w, r, actor, id)
}

// Delete godoc
// DELETE /users/{id}
// Admin middleware gerektirir.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.userService.Delete(r.Context(), actor, id); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.NoContent(w)
}

// update, UpdateMe ve admin Update'in ortak gövdesi.
func (h *UserHandler) update(w http.ResponseWriter, r *http.Request, actor *models.User, targetID int64) {
	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), actor, targetID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, updated)
}
