package seeders

import (
	"errors"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedLanguages kartların basıldığı dilleri oluşturur. Mevcut kayıtlar atlanır.
func SeedLanguages(db *gorm.DB) error {
	languagesToSeed := []models.Language{
		{Name: models.LanguageNameEnglish, Code: "en"},
		{Name: "German", Code: "de"},
		{Name: "French", Code: "fr"},
		{Name: "Italian", Code: "it"},
		{Name: "Spanish", Code: "es"},
		{Name: "Portuguese (Brazil)", Code: "pt"},
		{Name: "Japanese", Code: "ja"},
		{Name: "Korean", Code: "ko"},
		{Name: "Russian", Code: "ru"},
		{Name: "Chinese Simplified", Code: "zh-Hans"},
		{Name: "Chinese Traditional", Code: "zh-Hant"},
	}

	configslog.SLog.Info("Dil seed işlemi başlıyor...")
	for _, language := range languagesToSeed {
		var existing models.Language
		result := db.Where("name = ?", language.Name).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Dil '%s' zaten mevcut, oluşturma atlanıyor.", language.Name)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Dil kontrol edilirken veritabanı hatası",
				zap.String("name", language.Name), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&language).Error; err != nil {
			configslog.Log.Error("Dil oluşturulamadı", zap.String("name", language.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Dil '%s' oluşturuldu (ID: %d).", language.Name, language.ID)
	}
	return nil
}
