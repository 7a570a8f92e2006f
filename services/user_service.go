package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/pkg/authz"
	"github.com/akinalp/tarif/repository"
)

// UserService, kullanıcı profili ve admin kullanıcı yönetimi.
type UserService interface {
	// GetByID, kullanıcıyı tam haliyle döner (kendi profili / admin için).
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetPublicProfile, herkese açık profil döner.
	GetPublicProfile(ctx context.Context, id int64) (*models.PublicProfile, error)

	// List, filtreli kullanıcı listesi. Sadece admin çağırır (guard handler'da).
	List(ctx context.Context, filter *models.UserListFilter) (*models.UsersPage, error)

	// UpdateProfile, actor'ün kendi profilini veya (admin ise) başkasını günceller.
	UpdateProfile(ctx context.Context, actor *models.User, targetID int64, req *models.UpdateUserRequest) (*models.User, error)

	// UpdateAvatar, kullanıcının avatar URL'ini değiştirir ve güncel halini döner.
	UpdateAvatar(ctx context.Context, userID int64, avatarURL string) (*models.User, error)

	// Delete, hesabı kalıcı olarak siler. Tarifler, beğeniler ve kayıtlar
	// CASCADE ile gider. Sahiplik kontrolü burada yapılır.
	Delete(ctx context.Context, actor *models.User, targetID int64) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService, constructor.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetPublicProfile(ctx context.Context, id int64) (*models.PublicProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s *userService) List(ctx context.Context, filter *models.UserListFilter) (*models.UsersPage, error) {
	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return &models.UsersPage{
		Items:  users,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor *models.User, targetID int64, req *models.UpdateUserRequest) (*models.User, error) {
	if err := authz.OwnerOrAdmin(actor, targetID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	// Kısmi güncelleme: sadece gönderilen alanlar değişir.
	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.users.UsernameTaken(ctx, *req.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: username already exists", pkg.ErrAlreadyExists)
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		email := models.NormalizeEmail(*req.Email)
		if email != user.Email {
			taken, err := s.users.EmailTaken(ctx, email, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, fmt.Errorf("%w: email already exists", pkg.ErrAlreadyExists)
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID int64, avatarURL string) (*models.User, error) {
	if err := s.users.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

func (s *userService) Delete(ctx context.Context, actor *models.User, targetID int64) error {
	if err := authz.OwnerOrAdmin(actor, targetID); err != nil {
		return err
	}
	return s.users.Delete(ctx, targetID)
}
