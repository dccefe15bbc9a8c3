package migrations

import (
	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cards, card_faces & card_rulings tables...")
	err := db.AutoMigrate(&models.Card{}, &models.CardFace{}, &models.CardRuling{})
	if err != nil {
		configslog.Log.Error("Failed to migrate cards, card_faces & card_rulings tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cards, card_faces & card_rulings tables migrated successfully")
	return nil
}

func MigratePrintingsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating card_printings, card_localisations & card_prices tables...")
	err := db.AutoMigrate(&models.CardPrinting{}, &models.CardLocalisation{}, &models.CardPrice{})
	if err != nil {
		configslog.Log.Error("Failed to migrate printing tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Printing tables migrated successfully")
	return nil
}
