package seeders

import (
	"errors"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedRarities temel nadirlik kayıtlarını oluşturur. Mevcut kayıtlar atlanır.
func SeedRarities(db *gorm.DB) error {
	raritiesToSeed := []models.Rarity{
		{Symbol: models.RaritySymbolCommon, Name: "Common", DisplayOrder: 1},
		{Symbol: models.RaritySymbolUncommon, Name: "Uncommon", DisplayOrder: 2},
		{Symbol: models.RaritySymbolRare, Name: "Rare", DisplayOrder: 3},
		{Symbol: models.RaritySymbolMythic, Name: "Mythic Rare", DisplayOrder: 4},
	}

	configslog.SLog.Info("Nadirlik seed işlemi başlıyor...")
	for _, rarity := range raritiesToSeed {
		var existing models.Rarity
		result := db.Where("symbol = ?", rarity.Symbol).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Nadirlik '%s' zaten mevcut, oluşturma atlanıyor.", rarity.Name)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Nadirlik kontrol edilirken veritabanı hatası",
				zap.String("symbol", rarity.Symbol), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&rarity).Error; err != nil {
			configslog.Log.Error("Nadirlik oluşturulamadı", zap.String("symbol", rarity.Symbol), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Nadirlik '%s' oluşturuldu (ID: %d).", rarity.Name, rarity.ID)
	}
	return nil
}
