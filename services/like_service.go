package services

import (
	"context"
	"fmt"

	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/repository"
)

// LikeService, tarif beğenileri. Tüm operasyonlar önce tarifin varlığını
// doğrular — olmayan tarife beğeni 404'tür, sessiz başarı değil.
type LikeService interface {
	// Like, tarifi beğenir ve güncel durumu döner. Tekrar beğenmek idempotenttir.
	Like(ctx context.Context, userID, recipeID int64) (*models.LikeStatus, error)

	// Unlike, beğeniyi kaldırır ve güncel durumu döner. İdempotenttir.
	Unlike(ctx context.Context, userID, recipeID int64) (*models.LikeStatus, error)

	// Count, tarifin toplam beğeni sayısını döner.
	Count(ctx context.Context, recipeID int64) (*models.LikesCount, error)

	// Status, kullanıcının tarifi beğenip beğenmediğini döner.
	Status(ctx context.Context, userID, recipeID int64) (*models.LikeStatus, error)
}

type likeService struct {
	likes   repository.LikeRepository
	recipes repository.RecipeRepository
}

// NewLikeService, constructor.
func NewLikeService(likes repository.LikeRepository, recipes repository.RecipeRepository) LikeService {
	return &likeService{likes: likes, recipes: recipes}
}

func (s *likeService) Like(ctx context.Context, userID, recipeID int64) (*models.LikeStatus, error) {
	if err := s.ensureRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	if err := s.likes.Add(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	return s.status(ctx, userID, recipeID)
}

func (s *likeService) Unlike(ctx context.Context, userID, recipeID int64) (*models.LikeStatus, error) {
	if err := s.ensureRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	if err := s.likes.Remove(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	return s.status(ctx, userID, recipeID)
}

func (s *likeService) Count(ctx context.Context, recipeID int64) (*models.LikesCount, error) {
	if err := s.ensureRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	count, err := s.likes.Count(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return &models.LikesCount{RecipeID: recipeID, Count: count}, nil
}

func (s *likeService) Status(ctx context.Context, userID, recipeID int64) (*models.LikeStatus, error) {
	if err := s.ensureRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.status(ctx, userID, recipeID)
}

func (s *likeService) ensureRecipe(ctx context.Context, recipeID int64) error {
	exists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: recipe not found", pkg.ErrNotFound)
	}
	return nil
}

func (s *likeService) status(ctx context.Context, userID, recipeID int64) (*models.LikeStatus, error) {
	liked, err := s.likes.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	count, err := s.likes.Count(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return &models.LikeStatus{RecipeID: recipeID, Liked: liked, LikesCount: count}, nil
}
