package handlers_test

// Integration testleri: gerçek SQLite (geçici dosya) + httptest server.
// Mock yok — handler'dan DB'ye kadar tüm yol çalışır.

import (
	"bytes"
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/tarif/database"
	"github.com/akinalp/tarif/handlers"
	"github.com/akinalp/tarif/middleware"
	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/pkg/token"
	"github.com/akinalp/tarif/repository"
	"github.com/akinalp/tarif/services"
)

type testServer struct {
	*httptest.Server
	db        *database.DB
	uploadDir string
}

// setupTestServer, uygulamanın route'larını production wire-up'ı ile aynı
// şekilde kurar ve httptest server döner.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	recipeRepo := repository.NewSQLiteRecipeRepo(db.Conn)
	tagRepo := repository.NewSQLiteTagRepo(db.Conn)
	likeRepo := repository.NewSQLiteLikeRepo(db.Conn)
	saveRepo := repository.NewSQLiteSaveRepo(db.Conn)

	codec, err := token.NewCodec("test-secret", "HS256")
	require.NoError(t, err)

	authService := services.NewAuthService(userRepo, codec, time.Hour, 24*time.Hour)
	userService := services.NewUserService(userRepo)
	recipeService := services.NewRecipeService(db.Conn, recipeRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)
	likeService := services.NewLikeService(likeRepo, recipeRepo)
	saveService := services.NewSaveService(saveRepo, recipeRepo)

	uploadDir := t.TempDir()

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	tagHandler := handlers.NewTagHandler(tagService)
	likeHandler := handlers.NewLikeHandler(likeService)
	saveHandler := handlers.NewSaveHandler(saveService)
	avatarHandler := handlers.NewAvatarHandler(userService, uploadDir, 1<<20)

	authMw := middleware.NewAuthMiddleware(authService, userRepo)
	adminMw := middleware.NewAdminMiddleware()

	auth := func(h http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(h))
	}
	authAdmin := func(h http.HandlerFunc) http.Handler {
		return authMw.Require(adminMw.Require(http.HandlerFunc(h)))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)
	mux.Handle("GET /auth/me", auth(authHandler.Me))

	mux.Handle("GET /users/me", auth(userHandler.GetMe))
	mux.Handle("PATCH /users/me", auth(userHandler.UpdateMe))
	mux.Handle("DELETE /users/me", auth(userHandler.DeleteMe))
	mux.Handle("POST /users/me/avatar", auth(avatarHandler.Upload))
	mux.HandleFunc("GET /users/{id}/public", userHandler.GetPublicProfile)
	mux.Handle("GET /users", authAdmin(userHandler.List))
	mux.Handle("PATCH /users/{id}", authAdmin(userHandler.Update))
	mux.Handle("DELETE /users/{id}", authAdmin(userHandler.Delete))

	mux.HandleFunc("GET /recipes", recipeHandler.List)
	mux.HandleFunc("GET /recipes/{id}", recipeHandler.Get)
	mux.Handle("POST /recipes", auth(recipeHandler.Create))
	mux.Handle("PATCH /recipes/{id}", auth(recipeHandler.Update))
	mux.Handle("DELETE /recipes/{id}", auth(recipeHandler.Delete))
	mux.Handle("POST /recipes/{id}/tags/{tagId}", auth(recipeHandler.AttachTag))
	mux.Handle("DELETE /recipes/{id}/tags/{tagId}", auth(recipeHandler.DetachTag))

	mux.Handle("POST /recipes/{id}/like", auth(likeHandler.Like))
	mux.Handle("DELETE /recipes/{id}/like", auth(likeHandler.Unlike))
	mux.HandleFunc("GET /recipes/{id}/likes/count", likeHandler.Count)
	mux.Handle("GET /recipes/{id}/likes/me", auth(likeHandler.Status))

	mux.Handle("POST /recipes/{id}/save", auth(saveHandler.Save))
	mux.Handle("DELETE /recipes/{id}/save", auth(saveHandler.Unsave))
	mux.Handle("GET /recipes/me/saves", auth(saveHandler.ListMine))
	mux.Handle("GET /recipes/{id}/saves/me", auth(saveHandler.Status))

	mux.HandleFunc("GET /tags", tagHandler.List)
	mux.HandleFunc("GET /tags/{id}", tagHandler.Get)
	mux.Handle("POST /tags", authAdmin(tagHandler.Create))
	mux.Handle("PATCH /tags/{id}", authAdmin(tagHandler.Update))
	mux.Handle("DELETE /tags/{id}", authAdmin(tagHandler.Delete))

	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(uploadDir))))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, db: db, uploadDir: uploadDir}
}

// doJSON, JSON body'li bir request gönderir ve yanıtı APIResponse olarak çözer.
// token boş değilse Authorization header eklenir.
func (ts *testServer) doJSON(t *testing.T, method, path, accessToken string, body any) (int, pkg.APIResponse) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope pkg.APIResponse
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	}
	return resp.StatusCode, envelope
}

// doForm, form-encoded POST gönderir (login akışı için).
func (ts *testServer) doForm(t *testing.T, path string, values url.Values) (int, pkg.APIResponse) {
	t.Helper()

	resp, err := ts.Client().Post(ts.URL+path,
		"application/x-www-form-urlencoded", strings.NewReader(values.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope pkg.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

// decodeData, APIResponse.Data'yı istenen tipe çevirir.
func decodeData(t *testing.T, envelope pkg.APIResponse, out any) {
	t.Helper()
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// register + login kısayolu: access token döner.
func (ts *testServer) registerAndLogin(t *testing.T, username, email, password string) string {
	t.Helper()

	status, _ := ts.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status)

	status, envelope := ts.doForm(t, "/auth/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, status)

	var pair struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeData(t, envelope, &pair)
	require.NotEmpty(t, pair.AccessToken)
	return pair.AccessToken
}

// makeAdmin, kullanıcıyı doğrudan DB'den admin yapar.
// Admin atama endpoint'i yoktur; ilk admin operasyonel olarak işaretlenir.
func (ts *testServer) makeAdmin(t *testing.T, username string) {
	t.Helper()
	res, err := ts.db.Conn.Exec(`UPDATE users SET is_admin = 1 WHERE username = ?`, username)
	require.NoError(t, err)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)
}

// itoa, path kurarken okunabilirlik için kısayol.
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
