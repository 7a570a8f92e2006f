// Package main — Handler katmanı başlatma.
package main

import (
	"github.com/akinalp/tarif/config"
	"github.com/akinalp/tarif/handlers"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth   *handlers.AuthHandler
	User   *handlers.UserHandler
	Recipe *handlers.RecipeHandler
	Tag    *handlers.TagHandler
	Like   *handlers.LikeHandler
	Save   *handlers.SaveHandler
	Avatar *handlers.AvatarHandler
}

// initHandlers, service katmanı üzerinden handler'ları kurar.
func initHandlers(svcs *Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:   handlers.NewAuthHandler(svcs.Auth),
		User:   handlers.NewUserHandler(svcs.User),
		Recipe: handlers.NewRecipeHandler(svcs.Recipe),
		Tag:    handlers.NewTagHandler(svcs.Tag),
		Like:   handlers.NewLikeHandler(svcs.Like),
		Save:   handlers.NewSaveHandler(svcs.Save),
		Avatar: handlers.NewAvatarHandler(svcs.User, cfg.Upload.Dir, cfg.Upload.MaxSize),
	}
}
