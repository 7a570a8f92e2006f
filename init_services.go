// Package main — Service katmanı başlatma.
package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/akinalp/tarif/config"
	"github.com/akinalp/tarif/pkg/token"
	"github.com/akinalp/tarif/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth   services.AuthService
	User   services.UserService
	Recipe services.RecipeService
	Tag    services.TagService
	Like   services.LikeService
	Save   services.SaveService
}

// initServices, repository'ler ve config üzerinden service katmanını kurar.
//
// Token codec burada oluşturulur: secret ve algoritma config'den gelir,
// geçersiz algoritma startup'ta hata — runtime'da sürprizle karşılaşmayız.
func initServices(db *sql.DB, repos *Repositories, cfg *config.Config) (*Services, error) {
	codec, err := token.NewCodec(cfg.JWT.Secret, cfg.JWT.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}

	// Config ham sayılar taşır (dakika/gün), service süre ister.
	accessExpiry := time.Duration(cfg.JWT.AccessTokenExpiry) * time.Minute
	refreshExpiry := time.Duration(cfg.JWT.RefreshTokenExpiry) * 24 * time.Hour

	return &Services{
		Auth:   services.NewAuthService(repos.User, codec, accessExpiry, refreshExpiry),
		User:   services.NewUserService(repos.User),
		Recipe: services.NewRecipeService(db, repos.Recipe, repos.Tag),
		Tag:    services.NewTagService(repos.Tag),
		Like:   services.NewLikeService(repos.Like, repos.Recipe),
		Save:   services.NewSaveService(repos.Save, repos.Recipe),
	}, nil
}
