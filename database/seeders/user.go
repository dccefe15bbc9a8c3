package seeders

import (
	"errors"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"os"
)

// SeedSystemUser sistem kullanıcısını oluşturur veya şifresini günceller.
// Şifre SYSTEM_USER_PASSWORD ortam değişkeninden okunur.
func SeedSystemUser(db *gorm.DB) error {
	email := os.Getenv("SYSTEM_USER_EMAIL")
	password := os.Getenv("SYSTEM_USER_PASSWORD")
	if email == "" || password == "" {
		configslog.SLog.Warn("SYSTEM_USER_EMAIL veya SYSTEM_USER_PASSWORD tanımlı değil, sistem kullanıcısı atlanıyor.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		existing.PasswordHash = string(hash)
		existing.IsSystem = true
		existing.IsEnabled = true
		if err := db.Save(&existing).Error; err != nil {
			configslog.Log.Error("Sistem kullanıcısı güncellenemedi", zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Sistem kullanıcısı güncellendi: %s", email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	user := models.User{
		Name:         "System",
		Email:        email,
		PasswordHash: string(hash),
		IsSystem:     true,
		IsEnabled:    true,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Sistem kullanıcısı oluşturuldu: %s (ID: %d)", email, user.ID)
	return nil
}
