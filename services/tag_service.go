package services

import (
	"context"

	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/repository"
)

// TagService, etiket kataloğu. Okumalar herkese açık, yazmalar admin
// (guard route seviyesinde).
type TagService interface {
	Create(ctx context.Context, req *models.TagRequest) (*models.Tag, error)
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	Update(ctx context.Context, id int64, req *models.TagRequest) (*models.Tag, error)
	Delete(ctx context.Context, id int64) error
}

type tagService struct {
	tags repository.TagRepository
}

// NewTagService, constructor.
func NewTagService(tags repository.TagRepository) TagService {
	return &tagService{tags: tags}
}

func (s *tagService) Create(ctx context.Context, req *models.TagRequest) (*models.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	tag := &models.Tag{Name: req.Name}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	return s.tags.GetByID(ctx, id)
}

func (s *tagService) List(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

func (s *tagService) Update(ctx context.Context, id int64, req *models.TagRequest) (*models.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tag.Name = req.Name
	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, id int64) error {
	return s.tags.Delete(ctx, id)
}
