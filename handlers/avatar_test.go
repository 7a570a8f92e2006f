package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
)

// uploadAvatar, multipart form ile avatar yükler.
// Part'a gerçek bir Content-Type yazabilmek için CreatePart kullanılır —
// CreateFormFile her zaman application/octet-stream yazar.
func (ts *testServer) uploadAvatar(t *testing.T, accessToken, filename, mime string, content []byte) (int, pkg.APIResponse) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", mime)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/users/me/avatar", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope pkg.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestAvatarUpload(t *testing.T) {
	t.Parallel()

	ts := setupTestServer(t)
	tok := ts.registerAndLogin(t, "fotocu", "fotocu@example.com", "sifre123")

	payload := []byte("fake-png-bytes")
	status, envelope := ts.uploadAvatar(t, tok, "profil.PNG", "image/png", payload)
	require.Equal(t, http.StatusOK, status)

	var user models.User
	decodeData(t, envelope, &user)
	require.NotNil(t, user.AvatarURL)
	require.True(t, strings.HasPrefix(*user.AvatarURL, "/uploads/"))
	// Uzantı lowercase'e çekilir, orijinal isim taşınmaz
	assert.True(t, strings.HasSuffix(*user.AvatarURL, ".png"))
	assert.NotContains(t, *user.AvatarURL, "profil")

	firstFile := filepath.Join(ts.uploadDir, filepath.Base(*user.AvatarURL))
	saved, err := os.ReadFile(firstFile)
	require.NoError(t, err)
	assert.Equal(t, payload, saved)

	// Statik sunum aynı içeriği döner
	resp, err := ts.Client().Get(ts.URL + *user.AvatarURL)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, payload, body)

	// İkinci yükleme eski dosyayı temizler
	status, envelope = ts.uploadAvatar(t, tok, "yeni.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.Equal(t, http.StatusOK, status)
	decodeData(t, envelope, &user)
	require.NotNil(t, user.AvatarURL)
	assert.True(t, strings.HasSuffix(*user.AvatarURL, ".jpg"))

	_, err = os.Stat(firstFile)
	assert.True(t, os.IsNotExist(err), "old avatar file should be removed")
}

func TestAvatarUpload_Rejections(t *testing.T) {
	t.Parallel()

	ts := setupTestServer(t)
	tok := ts.registerAndLogin(t, "deneyen", "deneyen@example.com", "sifre123")

	// Resim olmayan MIME reddedilir
	status, _ := ts.uploadAvatar(t, tok, "notlar.txt", "text/plain", []byte("merhaba"))
	assert.Equal(t, http.StatusBadRequest, status)

	// "file" alanı olmadan multipart → 400
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("baska", "alan"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/users/me/avatar", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Token olmadan → 401
	status, _ = ts.uploadAvatar(t, "", "profil.png", "image/png", []byte("x"))
	assert.Equal(t, http.StatusUnauthorized, status)
}
