// Package handlers — AvatarHandler: kullanıcı avatar yükleme endpoint'i.
//
// İşlem akışı:
// 1. Multipart form parse → "file" alanını oku
// 2. MIME type kontrolü (sadece resim)
// 3. Boyut kontrolü
// 4. Dosyayı diske kaydet (uuid + orijinal uzantı)
// 5. Kullanıcı kaydını güncelle (avatar_url)
package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/services"
)

// allowedImageMimes, avatar yüklemesinde kabul edilen resim MIME type'ları.
var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// AvatarHandler, avatar yükleme endpoint'ini yönetir.
type AvatarHandler struct {
	userService services.UserService
	uploadDir   string
	maxSize     int64
}

// NewAvatarHandler, constructor.
// uploadDir: dosyaların kaydedileceği dizin. maxSize: byte cinsinden üst limit.
func NewAvatarHandler(userService services.UserService, uploadDir string, maxSize int64) *AvatarHandler {
	return &AvatarHandler{
		userService: userService,
		uploadDir:   uploadDir,
		maxSize:     maxSize,
	}
}

// Upload godoc
// POST /users/me/avatar
// Content-Type: multipart/form-data, "file" alanı ile resim dosyası.
//
// Eski avatar dosyası varsa diskten silinir (çöp birikmesini önler).
func (h *AvatarHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	fileURL, err := h.processUpload(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	h.deleteOldFile(user.AvatarURL)

	updated, err := h.userService.UpdateAvatar(r.Context(), user.ID, fileURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, updated)
}

// processUpload, multipart form'dan dosyayı okur, validate eder ve diske kaydeder.
// Başarılı olursa dosyanın URL path'ini döner (ör: "/uploads/a1b2....png").
func (h *AvatarHandler) processUpload(r *http.Request) (string, error) {
	// maxMemory: bellekte tutulacak üst sınır; fazlası temp dosyaya yazılır.
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		return "", fmt.Errorf("%w: failed to parse multipart form", pkg.ErrBadRequest)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("%w: file field is required", pkg.ErrBadRequest)
	}
	defer file.Close()

	if header.Size > h.maxSize {
		return "", fmt.Errorf("%w: file too large (max %d bytes)", pkg.ErrBadRequest, h.maxSize)
	}

	contentType := header.Header.Get("Content-Type")
	mimeBase := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if !allowedImageMimes[mimeBase] {
		return "", fmt.Errorf("%w: only image files are allowed (jpeg, png, gif, webp)", pkg.ErrBadRequest)
	}

	// uuid dosya adı çakışmayı ve path traversal'ı birlikte çözer;
	// orijinal isimden sadece uzantı taşınır.
	ext := strings.ToLower(filepath.Ext(header.Filename))
	diskFilename := uuid.NewString() + ext

	destPath := filepath.Join(h.uploadDir, diskFilename)
	destFile, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, file); err != nil {
		os.Remove(destPath) // Yarım kalan dosyayı temizle
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return "/uploads/" + diskFilename, nil
}

// deleteOldFile, eski avatar dosyasını diskten siler.
// URL null ise veya dosya bulunamazsa sessizce devam eder —
// avatar temizliği kritik bir işlem değildir.
func (h *AvatarHandler) deleteOldFile(fileURL *string) {
	if fileURL == nil || *fileURL == "" {
		return
	}

	filename := filepath.Base(*fileURL)
	if filename == "." || filename == "/" {
		return
	}

	os.Remove(filepath.Join(h.uploadDir, filename))
}
