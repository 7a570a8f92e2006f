// Package middleware — AdminMiddleware, admin yetkisi kontrolü.
//
// AuthMiddleware'den SONRA çalışır — context'te user bilgisi mevcuttur.
//
// Kullanım:
//
//	authMw.Require(adminMw.Require(http.HandlerFunc(userHandler.List)))
package middleware

import (
	"net/http"

	"github.com/akinalp/tarif/handlers"
	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/pkg/authz"
)

// AdminMiddleware, admin yetkisi zorunlu kılan middleware.
type AdminMiddleware struct{}

// NewAdminMiddleware, constructor.
func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// Require, context'teki kullanıcı admin değilse 403 döner.
func (m *AdminMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(handlers.UserContextKey).(*models.User)
		if !ok {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
			return
		}

		if err := authz.AdminOnly(user); err != nil {
			pkg.ErrorWithMessage(w, http.StatusForbidden, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
