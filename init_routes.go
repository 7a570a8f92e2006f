// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ları burada tanımlıdır:
//   - auth: JWT access token doğrulaması
//   - authAdmin: auth + admin yetkisi
package main

import (
	"net/http"
	"strings"

	"github.com/akinalp/tarif/config"
	"github.com/akinalp/tarif/database"
	"github.com/akinalp/tarif/middleware"
	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/repository"
	"github.com/akinalp/tarif/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// Route sıralama notu: Go 1.22 router'ında literal segment'ler wildcard'lardan
// her zaman önceliklidir — "GET /recipes/me/saves" ile "GET /recipes/{id}"
// çakışmaz, kayıt sırası fark etmez.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
	db *database.DB,
	cfg *config.Config,
) {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService, userRepo)
	adminMw := middleware.NewAdminMiddleware()

	// ─── Middleware Chain Helpers ───
	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}
	authAdmin := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(adminMw.Require(http.HandlerFunc(handler)))
	}

	// Health check — DB bağlantısını da yoklar
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Conn.PingContext(r.Context()); err != nil {
			pkg.JSON(w, http.StatusServiceUnavailable, map[string]any{"status": "degraded", "db": false})
			return
		}
		pkg.JSON(w, http.StatusOK, map[string]any{"status": "ok", "db": true})
	})

	// Auth — register/login/refresh/logout public; me token gerektirir
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)
	mux.Handle("GET /auth/me", auth(h.Auth.Me))

	// Users — kendi profili
	mux.Handle("GET /users/me", auth(h.User.GetMe))
	mux.Handle("PATCH /users/me", auth(h.User.UpdateMe))
	mux.Handle("DELETE /users/me", auth(h.User.DeleteMe))
	mux.Handle("POST /users/me/avatar", auth(h.Avatar.Upload))

	// Users — public profil ve admin yönetimi
	mux.HandleFunc("GET /users/{id}/public", h.User.GetPublicProfile)
	mux.Handle("GET /users", authAdmin(h.User.List))
	mux.Handle("PATCH /users/{id}", authAdmin(h.User.Update))
	mux.Handle("DELETE /users/{id}", authAdmin(h.User.Delete))

	// Recipes — okumalar herkese açık, yazmalar token gerektirir
	mux.HandleFunc("GET /recipes", h.Recipe.List)
	mux.HandleFunc("GET /recipes/{id}", h.Recipe.Get)
	mux.Handle("POST /recipes", auth(h.Recipe.Create))
	mux.Handle("PATCH /recipes/{id}", auth(h.Recipe.Update))
	mux.Handle("DELETE /recipes/{id}", auth(h.Recipe.Delete))
	mux.Handle("POST /recipes/{id}/tags/{tagId}", auth(h.Recipe.AttachTag))
	mux.Handle("DELETE /recipes/{id}/tags/{tagId}", auth(h.Recipe.DetachTag))

	// Likes
	mux.Handle("POST /recipes/{id}/like", auth(h.Like.Like))
	mux.Handle("DELETE /recipes/{id}/like", auth(h.Like.Unlike))
	mux.HandleFunc("GET /recipes/{id}/likes/count", h.Like.Count)
	mux.Handle("GET /recipes/{id}/likes/me", auth(h.Like.Status))

	// Saves
	mux.Handle("POST /recipes/{id}/save", auth(h.Save.Save))
	mux.Handle("DELETE /recipes/{id}/save", auth(h.Save.Unsave))
	mux.Handle("GET /recipes/me/saves", auth(h.Save.ListMine))
	mux.Handle("GET /recipes/{id}/saves/me", auth(h.Save.Status))

	// Tags — okumalar herkese açık, yazmalar admin
	mux.HandleFunc("GET /tags", h.Tag.List)
	mux.HandleFunc("GET /tags/{id}", h.Tag.Get)
	mux.Handle("POST /tags", authAdmin(h.Tag.Create))
	mux.Handle("PATCH /tags/{id}", authAdmin(h.Tag.Update))
	mux.Handle("DELETE /tags/{id}", authAdmin(h.Tag.Delete))

	// Static file serving — yüklenen avatarlara erişim
	//
	// http.StripPrefix: URL'den "/uploads/" kısmını çıkarır.
	// http.FileServer: Kalan path'i upload dizininde dosya olarak arar.
	//
	// Path traversal koruması: http.FileServer ".." path'lerini zaten reddeder,
	// ek olarak sadece düz dosya isimleri kabul edilir (subdirectory yok).
	uploadsHandler := http.StripPrefix("/uploads/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/") || strings.Contains(r.URL.Path, "\\") {
			http.NotFound(w, r)
			return
		}
		http.FileServer(http.Dir(cfg.Upload.Dir)).ServeHTTP(w, r)
	}))
	mux.Handle("GET /uploads/", uploadsHandler)
}
