package models

// TokenPair, başarılı login/refresh yanıtı.
// token_type her zaman "bearer" — istemciler Authorization header'ını
// buna göre kurar.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
