package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
	"github.com/akinalp/tarif/pkg/token"
	"github.com/akinalp/tarif/repository"
)

// bcryptCost: varsayılan 10 yerine 12 — login sıklığı düşük, brute-force
// maliyeti yüksek olsun.
const bcryptCost = 12

// AuthService, kayıt, login ve token yaşam döngüsü.
//
// Token'lar tamamen stateless: sunucu tarafında session kaydı tutulmaz,
// refresh token da imzalı bir JWT'dir ve süresi dolana kadar tekrar
// kullanılabilir. Logout bu yüzden bir no-op'tur — istemci token'ı atar.
type AuthService interface {
	// Register, yeni kullanıcı oluşturur ve public kimliğini döner.
	// Token dönmez; istemci login ile devam eder.
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)

	// Login, kullanıcı adı VEYA e-posta + şifre ile access/refresh çifti üretir.
	// Hatalı kimlik bilgisi pkg.ErrUnauthorized döner — kullanıcı var/yok
	// ayrımı sızdırılmaz.
	Login(ctx context.Context, login, password string) (*models.TokenPair, error)

	// Refresh, geçerli bir refresh token'dan yeni bir çift üretir.
	// Eski çift geçersiz kılınmaz (rotation yok).
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)

	// ValidateAccessToken, access token'ı doğrular ve subject user ID döner.
	// Her tür hata tek tip pkg.ErrUnauthorized'a iner — middleware'in
	// istemciye detay sızdırmaması için.
	ValidateAccessToken(tokenString string) (int64, error)
}

type authService struct {
	users         repository.UserRepository
	codec         *token.Codec
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewAuthService, constructor.
func NewAuthService(users repository.UserRepository, codec *token.Codec, accessExpiry, refreshExpiry time.Duration) AuthService {
	return &authService{
		users:         users,
		codec:         codec,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *authService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        models.NormalizeEmail(req.Email),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, login, password string) (*models.TokenPair, error) {
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: incorrect username or password", pkg.ErrUnauthorized)
	}

	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: incorrect username or password", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: incorrect username or password", pkg.ErrUnauthorized)
	}

	return s.issuePair(user.ID)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	userID, err := s.codec.Decode(refreshToken, token.KindRefresh)
	if err != nil {
		// İmza/süre hataları refresh'e özgü sentinel'e çevrilir;
		// tip ve subject hataları zaten kendi sentinel'lerini taşır.
		if errors.Is(err, pkg.ErrInvalidToken) {
			return nil, pkg.ErrInvalidRefreshToken
		}
		return nil, err
	}

	// Kullanıcı silinmişse refresh zinciri burada kopar.
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.ErrUserNotFound
		}
		return nil, err
	}

	return s.issuePair(userID)
}

func (s *authService) ValidateAccessToken(tokenString string) (int64, error) {
	userID, err := s.codec.Decode(tokenString, token.KindAccess)
	if err != nil {
		return 0, pkg.ErrUnauthorized
	}
	return userID, nil
}

func (s *authService) issuePair(userID int64) (*models.TokenPair, error) {
	access, err := s.codec.Encode(userID, token.KindAccess, s.accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.codec.Encode(userID, token.KindRefresh, s.refreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &models.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}
