package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"
	"kartoteka.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrUserNotFound       AuthServiceError = "kullanıcı bulunamadı"
	ErrInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
	ErrUserDisabled       AuthServiceError = "hesap pasif durumda"
	ErrEmailTaken         AuthServiceError = "bu e-posta adresi zaten kayıtlı"
	ErrWeakPassword       AuthServiceError = "şifre en az 8 karakter olmalı"
	ErrAuthInvalidInput   AuthServiceError = "geçersiz girdi verisi"
)

// IAuthService kimlik işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	RerollUnusedCardsSeed(ctx context.Context, userID uint) (int64, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo repositories.IUserRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{userRepo: repositories.NewUserRepository()}
}

// Register yeni bir kullanıcı kaydeder.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, ErrAuthInvalidInput
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		configslog.Log.Error("Register: e-posta kontrolü başarısız", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsEnabled:    true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		configslog.Log.Error("Register: kullanıcı oluşturulamadı", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Yeni kullanıcı kaydedildi: %s (ID %d)", user.Email, user.ID)
	return user, nil
}

// Authenticate e-posta ve şifre ile giriş doğrular.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Kullanıcı yok; zamanlama farkını azaltmak için yine de hash karşılaştır.
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000000000000000000000000000000000"), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsEnabled {
		return nil, ErrUserDisabled
	}
	return user, nil
}

// GetUserByID kullanıcıyı ID ile getirir.
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdatePassword mevcut şifreyi doğrulayıp yenisini yazar.
func (s *AuthService) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	ctxWithUser := models.ContextWithUserID(ctx, userID)
	if err := s.userRepo.Update(ctxWithUser, user); err != nil {
		configslog.Log.Error("UpdatePassword: kayıt başarısız", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Kullanıcı şifresi güncellendi: ID %d", userID)
	return nil
}

// RerollUnusedCardsSeed kullanılmayan kart önerilerinin tohumunu yeniler.
func (s *AuthService) RerollUnusedCardsSeed(ctx context.Context, userID uint) (int64, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	user.UnusedCardsSeed = rand.Int63()
	ctxWithUser := models.ContextWithUserID(ctx, userID)
	if err := s.userRepo.Update(ctxWithUser, user); err != nil {
		return 0, err
	}
	return user.UnusedCardsSeed, nil
}

var _ IAuthService = (*AuthService)(nil)
