package models

// LikeStatus, bir tarifin beğeni durumu — like/unlike yanıtı.
// Liked, isteği yapan kullanıcının perspektifinden "şu an beğeniyor mu"dur.
type LikeStatus struct {
	RecipeID   int64 `json:"recipe_id"`
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// LikesCount, beğeni sayısı yanıtı (public endpoint).
type LikesCount struct {
	RecipeID int64 `json:"recipe_id"`
	Count    int64 `json:"count"`
}

// SaveStatus, bir tarifin kaydetme durumu — save/unsave yanıtı.
type SaveStatus struct {
	RecipeID int64 `json:"recipe_id"`
	Saved    bool  `json:"saved"`
}
