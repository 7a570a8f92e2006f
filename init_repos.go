// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// Her repository bir SQL.DB bağlantısı alır ve interface döner.
// main.go'daki wire-up'ı modülerleştirmek için bu dosyaya taşındı.
package main

import (
	"database/sql"

	"github.com/akinalp/tarif/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
//
// Neden struct? Ayrı repository değişkenleri yerine tek struct kullanmak:
// 1. Fonksiyon imzalarını temiz tutar
// 2. Yeni repository eklendiğinde sadece struct + initRepositories güncellenir
// 3. IDE auto-complete ile kolay erişim (repos.User, repos.Recipe, vb.)
type Repositories struct {
	User   repository.UserRepository
	Recipe repository.RecipeRepository
	Tag    repository.TagRepository
	Like   repository.LikeRepository
	Save   repository.SaveRepository
}

// initRepositories, tüm repository'leri tek DB bağlantısı üzerinde kurar.
func initRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		User:   repository.NewSQLiteUserRepo(db),
		Recipe: repository.NewSQLiteRecipeRepo(db),
		Tag:    repository.NewSQLiteTagRepo(db),
		Like:   repository.NewSQLiteLikeRepo(db),
		Save:   repository.NewSQLiteSaveRepo(db),
	}
}
