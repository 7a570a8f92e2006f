package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/tarif/models"
)

// createTestTag, admin token'ı ile etiket oluşturur.
func createTestTag(t *testing.T, ts *testServer, adminTok, name string) models.Tag {
	t.Helper()
	status, envelope := ts.doJSON(t, http.MethodPost, "/tags", adminTok, map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, status)
	var tag models.Tag
	decodeData(t, envelope, &tag)
	return tag
}

func createTestRecipe(t *testing.T, ts *testServer, tok string, body map[string]any) models.Recipe {
	t.Helper()
	status, envelope := ts.doJSON(t, http.MethodPost, "/recipes", tok, body)
	require.Equal(t, http.StatusCreated, status)
	var recipe models.Recipe
	decodeData(t, envelope, &recipe)
	return recipe
}

func TestRecipeCRUD(t *testing.T) {
	t.Parallel()

	ts := setupTestServer(t)
	tok := ts.registerAndLogin(t, "asci", "asci@example.com", "sifre123")
	adminTok := ts.registerAndLogin(t, "patron", "patron@example.com", "sifre123")
	ts.makeAdmin(t, "patron")

	vegan := createTestTag(t, ts, adminTok, "vegan")
	corba := createTestTag(t, ts, adminTok, "çorba")

	recipe := createTestRecipe(t, ts, tok, map[string]any{
		"title":       "Mercimek Çorbası",
		"description": "Klasik kırmızı mercimek",
		"ingredients": []string{"mercimek", "soğan", "havuç"},
		"steps":       []string{"doğra", "kavur", "haşla", "blend et"},
		"tag_ids":     []int64{vegan.ID, corba.ID},
	})
	assert.Equal(t, "Mercimek Çorbası", recipe.Title)
	assert.Len(t, recipe.Ingredients, 3)
	assert.Len(t, recipe.Tags, 2)
	assert.Zero(t, recipe.LikesCount)

	// Okuma herkese açık
	status, envelope := ts.doJSON(t, http.MethodGet, "/recipes/"+itoa(recipe.ID), "", nil)
	require.Equal(t, http.StatusOK, status)
	var fetched models.Recipe
	decodeData(t, envelope, &fetched)
	assert.Equal(t, recipe.Title, fetched.Title)
	assert.Len(t, fetched.Steps, 4)

	// Kısmi güncelleme — sadece title değişir
	status, envelope = ts.doJSON(t, http.MethodPatch, "/recipes/"+itoa(recipe.ID), tok, map[string]any{
		"title": "Mercimek Çorbası (Acılı)",
	})
	require.Equal(t, http.StatusOK, status)
	decodeData(t, envelope, &fetched)
	assert.Equal(t, "Mercimek Çorbası (Acılı)", fetched.Title)
	assert.Len(t, fetched.Ingredients, 3)

	// Silme → 204, ardından 404
	status, _ = ts.doJSON(t, http.MethodDelete, "/recipes/"+itoa(recipe.ID), tok, nil)
	require.Equal(t, http.StatusNoContent, status)
	status, _ = ts.doJSON(t, http.MethodGet, "/recipes/"+itoa(recipe.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRecipeCreate_MissingTag(t *testing.T) {
	t.Parallel()

	ts := setupTestServer(t)
	tok := ts.registerAndLogin(t, "asci", "asci@example.com", "sifre123")

	// Olmayan etiketle create tamamen başarısız olur — tarif de oluşmaz
	status, _ := ts.doJSON(t, http.MethodPost, "/recipes", tok, map[string]any{
		"title":   "Yarım Kalan",
		"tag_ids": []int64{999},
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, envelope := ts.doJSON(t, http.MethodGet, "/recipes", "", nil)
	require.Equal(t, http.StatusOK, status)
	var page models.RecipesPage
	decodeData(t, envelope, &page)
	assert.Zero(t, page.Total)
}

func TestRecipeOwnership(t *testing.T) {
	t.Parallel()

	ts := setupTestServer(t)
	ownerTok := ts.registerAndLogin(t, "sahip", "sahip@example.com", "sifre123")
	otherTok := ts.registerAndLogin(t, "baskasi", "baskasi@example.com", "sifre123")
	adminTok := ts.registerAndLogin(t, "mod", "mod@example.com", "sifre123")
	ts.makeAdmin(t, "mod")

	recipe := createTestRecipe(t, ts, ownerTok, map[string]any{"title": "Menemen"})

	// Sahip olmayan düzenleyemez ve silemez
	status, _ := ts.doJSON(t, http.MethodPatch, "/recipes/"+itoa(recipe.ID), otherTok, map[string]any{
		"title": "Çalıntı Menemen",
	})
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = ts.doJSON(t, http.MethodDelete, "/recipes/"+itoa(recipe.ID), otherTok, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// Admin sahip olmasa da silebilir (moderasyon)
	status, _ = ts.doJSON(t, http.MethodDelete, "/recipes/"+itoa(recipe.ID), adminTok, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestRecipeList_Filter(t *testing.T) {
	t.Parallel()

	ts := setupTestServer(t)
	tok := ts.registerAndLogin(t, "asci", "asci@example.com", "sifre123")

	createTestRecipe(t, ts, tok, map[string]any{"title": "Mercimek Çorbası"})
	createTestRecipe(t, ts, tok, map[string]any{"title": "Ezogelin Çorbası"})
	createTestRecipe(t, ts, tok, map[string]any{"title": "Karnıyarık"})

	// Substring araması
	status, envelope := ts.doJSON(t, http.MethodGet, "/recipes?q=Çorba", "", nil)
	require.Equal(t, http.StatusOK, status)
	var page models.RecipesPage
	decodeData(t, envelope, &page)
	assert.Equal(t, 2, page.Total)

	// Sayfalama: limit=1 ikinci sayfa
	status, envelope = ts.doJSON(t, http.MethodGet, "/recipes?q=Çorba&sort_by=title&sort_dir=asc&limit=1&offset=1", "", nil)
	require.Equal(t, http.StatusOK, status)
	decodeData(t, envelope, &page)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Mercimek Çorbası", page.Items[0].Title)
}

func TestTagAttachDetach(t *testing.T) {
	t.Parallel()

	ts := setupTestServer(t)
	tok := ts.registerAndLogin(t, "asci", "asci@example.com", "sifre123")
	adminTok := ts.registerAndLogin(t, "patron", "patron@example.com", "sifre123")
	ts.makeAdmin(t, "patron")

	tag := createTestTag(t, ts, adminTok, "tatlı")
	recipe := createTestRecipe(t, ts, tok, map[string]any{"title": "Sütlaç"})

	// Attach — idempotent, ikinci çağrı da 200
	for i := 0; i < 2; i++ {
		status, envelope := ts.doJSON(t, http.MethodPost,
			"/recipes/"+itoa(recipe.ID)+"/tags/"+itoa(tag.ID), tok, nil)
		require.Equal(t, http.StatusOK, status)
		var updated models.Recipe
		decodeData(t, envelope, &updated)
		assert.Len(t, updated.Tags, 1)
	}

	// Olmayan etiketi takmak 404
	status, _ := ts.doJSON(t, http.MethodPost,
		"/recipes/"+itoa(recipe.ID)+"/tags/999", tok, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Detach — idempotent
	for i := 0; i < 2; i++ {
		status, envelope := ts.doJSON(t, http.MethodDelete,
			"/recipes/"+itoa(recipe.ID)+"/tags/"+itoa(tag.ID), tok, nil)
		require.Equal(t, http.StatusOK, status)
		var updated models.Recipe
		decodeData(t, envelope, &updated)
		assert.Empty(t, updated.Tags)
	}
}

func TestLikeFlow(t *testing.T) {
	t.Parallel()

	ts := setupTestServer(t)
	tok := ts.registerAndLogin(t, "begenen", "begenen@example.com", "sifre123")
	otherTok := ts.registerAndLogin(t, "digeri", "digeri@example.com", "sifre123")

	recipe := createTestRecipe(t, ts, tok, map[string]any{"title": "İskender"})

	// Like — idempotent, sayı 1'de kalır
	var st models.LikeStatus
	for i := 0; i < 2; i++ {
		status, envelope := ts.doJSON(t, http.MethodPost, "/recipes/"+itoa(recipe.ID)+"/like", tok, nil)
		require.Equal(t, http.StatusCreated, status)
		decodeData(t, envelope, &st)
		assert.True(t, st.Liked)
		assert.EqualValues(t, 1, st.LikesCount)
	}

	// İkinci kullanıcı beğenince sayı 2
	status, envelope := ts.doJSON(t, http.MethodPost, "/recipes/"+itoa(recipe.ID)+"/like", otherTok, nil)
	require.Equal(t, http.StatusCreated, status)
	decodeData(t, envelope, &st)
	assert.EqualValues(t, 2, st.LikesCount)

	// Public sayaç auth gerektirmez
	status, envelope = ts.doJSON(t, http.MethodGet, "/recipes/"+itoa(recipe.ID)+"/likes/count", "", nil)
	require.Equal(t, http.StatusOK, status)
	var count models.LikesCount
	decodeData(t, envelope, &count)
	assert.EqualValues(t, 2, count.Count)

	// Unlike — idempotent
	for i := 0; i < 2; i++ {
		status, envelope = ts.doJSON(t, http.MethodDelete, "/recipes/"+itoa(recipe.ID)+"/like", tok, nil)
		require.Equal(t, http.StatusOK, status)
		decodeData(t, envelope, &st)
		assert.False(t, st.Liked)
		assert.EqualValues(t, 1, st.LikesCount)
	}

	// Olmayan tarif → 404, sessiz başarı değil
	status, _ = ts.doJSON(t, http.MethodPost, "/recipes/999/like", tok, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSaveFlow(t *testing.T) {
	t.Parallel()

	ts := setupTestServer(t)
	tok := ts.registerAndLogin(t, "toplayan", "toplayan@example.com", "sifre123")

	first := createTestRecipe(t, ts, tok, map[string]any{"title": "Mantı"})
	second := createTestRecipe(t, ts, tok, map[string]any{"title": "Lahmacun"})

	for _, r := range []models.Recipe{first, second} {
		status, envelope := ts.doJSON(t, http.MethodPost, "/recipes/"+itoa(r.ID)+"/save", tok, nil)
		require.Equal(t, http.StatusCreated, status)
		var st models.SaveStatus
		decodeData(t, envelope, &st)
		assert.True(t, st.Saved)
	}

	// Kayıtlılar: en son kaydedilen önce
	status, envelope := ts.doJSON(t, http.MethodGet, "/recipes/me/saves", tok, nil)
	require.Equal(t, http.StatusOK, status)
	var page models.RecipesPage
	decodeData(t, envelope, &page)
	require.Equal(t, 2, page.Total)
	assert.Equal(t, "Lahmacun", page.Items[0].Title)
	assert.Equal(t, "Mantı", page.Items[1].Title)

	// Unsave sonrası status false, liste küçülür
	status, _ = ts.doJSON(t, http.MethodDelete, "/recipes/"+itoa(first.ID)+"/save", tok, nil)
	require.Equal(t, http.StatusOK, status)

	status, envelope = ts.doJSON(t, http.MethodGet, "/recipes/"+itoa(first.ID)+"/saves/me", tok, nil)
	require.Equal(t, http.StatusOK, status)
	var st models.SaveStatus
	decodeData(t, envelope, &st)
	assert.False(t, st.Saved)

	status, envelope = ts.doJSON(t, http.MethodGet, "/recipes/me/saves", tok, nil)
	require.Equal(t, http.StatusOK, status)
	decodeData(t, envelope, &page)
	assert.Equal(t, 1, page.Total)
}

func TestTagAdminOnly(t *testing.T) {
	t.Parallel()

	ts := setupTestServer(t)
	tok := ts.registerAndLogin(t, "normal", "normal@example.com", "sifre123")
	adminTok := ts.registerAndLogin(t, "patron", "patron@example.com", "sifre123")
	ts.makeAdmin(t, "patron")

	// Normal kullanıcı etiket oluşturamaz
	status, _ := ts.doJSON(t, http.MethodPost, "/tags", tok, map[string]string{"name": "kaçak"})
	assert.Equal(t, http.StatusForbidden, status)

	tag := createTestTag(t, ts, adminTok, "hamur işi")

	// Duplicate isim → 400
	status, _ = ts.doJSON(t, http.MethodPost, "/tags", adminTok, map[string]string{"name": "hamur işi"})
	assert.Equal(t, http.StatusBadRequest, status)

	// Liste herkese açık, isim sırasıyla
	createTestTag(t, ts, adminTok, "akşam yemeği")
	status, envelope := ts.doJSON(t, http.MethodGet, "/tags", "", nil)
	require.Equal(t, http.StatusOK, status)
	var tags []models.Tag
	decodeData(t, envelope, &tags)
	require.Len(t, tags, 2)
	assert.Equal(t, "akşam yemeği", tags[0].Name)

	// Rename + delete admin işidir
	status, envelope = ts.doJSON(t, http.MethodPatch, "/tags/"+itoa(tag.ID), adminTok, map[string]string{"name": "börek"})
	require.Equal(t, http.StatusOK, status)
	var renamed models.Tag
	decodeData(t, envelope, &renamed)
	assert.Equal(t, "börek", renamed.Name)

	status, _ = ts.doJSON(t, http.MethodDelete, "/tags/"+itoa(tag.ID), adminTok, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = ts.doJSON(t, http.MethodGet, "/tags/"+itoa(tag.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
