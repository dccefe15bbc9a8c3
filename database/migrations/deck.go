package migrations

import (
	"kartoteka.link/configs/configslog"
	"kartoteka.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateDecksTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating decks & deck_cards tables...")
	err := db.AutoMigrate(&models.Deck{}, &models.DeckCard{})
	if err != nil {
		configslog.Log.Error("Failed to migrate decks & deck_cards tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Decks & deck_cards tables migrated successfully")
	return nil
}
